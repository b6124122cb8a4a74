// Package launch implements the launch-host picker: a single-entry TTL
// cache over the admissible host list, with uniform random selection among
// the cached hosts and a caller-supplied fallback when none exist.
package launch

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	log "github.com/public-forge/go-logger"

	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/models"
)

// DefaultTTL is the host-list cache lifetime when none is configured.
const DefaultTTL = 20 * time.Minute

// cacheKey is the single entry's key; the cache maps 0 -> [launch_info].
const cacheKey = 0

// Picker caches the launch-host list and picks one uniformly at random per
// request. The mutex only guards the refresh race: two concurrent misses
// must not both repopulate the cache against a slow repository.
type Picker struct {
	repo  interfaces.ILaunchRepository
	cache *expirable.LRU[int, []*models.LaunchInfo]
	rng   *rand.Rand

	mu sync.Mutex
}

// New constructs a Picker over repo. A zero ttl falls back to DefaultTTL.
func New(repo interfaces.ILaunchRepository, ttl time.Duration) *Picker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Picker{
		repo:  repo,
		cache: expirable.NewLRU[int, []*models.LaunchInfo](1, nil, ttl),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Pick returns one admissible host chosen uniformly at random, refreshing
// the cache from storage when the entry has expired. When no hosts exist
// (or the refresh fails) fallbackHost is returned, typically the request's
// X-Forwarded-Host.
func (p *Picker) Pick(ctx context.Context, fallbackHost string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	hosts, ok := p.cache.Get(cacheKey)
	if !ok {
		var err error
		hosts, err = p.repo.ListHosts(ctx)
		if err != nil {
			log.FromContext(ctx).Error(err)
			return fallbackHost
		}
		p.cache.Add(cacheKey, hosts)
	}
	if len(hosts) == 0 {
		return fallbackHost
	}
	return hosts[p.rng.Intn(len(hosts))].HostName
}
