// Package jackpot implements the jackpot coalescer: a single-actor cache
// mapping an ordered jackpot-id set to its name->contribution map,
// TTL-refreshed from the repository. Concurrent identical lookups inside
// the TTL collapse into one backend query because only the actor goroutine
// ever touches the cache or the repository.
package jackpot

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	log "github.com/public-forge/go-logger"
	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/interfaces"
)

// DefaultTTL is the cache entry lifetime when none is configured.
const DefaultTTL = 5 * time.Second

// cacheCapacity bounds the number of distinct id-set keys held at once;
// deployments configure at most a handful of jackpot groups.
const cacheCapacity = 128

type lookup struct {
	ctx   context.Context
	ids   []int64
	reply chan map[string]decimal.Decimal
}

// Coalescer is the single consumer of jackpot contribution lookups. All
// cache state is owned by its goroutine; callers only see the reply channel.
type Coalescer struct {
	repo  interfaces.IJackpotRepository
	cache *expirable.LRU[string, map[string]decimal.Decimal]

	lookups chan lookup
	done    chan struct{}
}

// New constructs a Coalescer over repo and starts its consumer loop. A zero
// ttl falls back to DefaultTTL.
func New(repo interfaces.IJackpotRepository, ttl time.Duration) *Coalescer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Coalescer{
		repo:    repo,
		cache:   expirable.NewLRU[string, map[string]decimal.Decimal](cacheCapacity, nil, ttl),
		lookups: make(chan lookup, 64),
		done:    make(chan struct{}),
	}
	go c.run()
	return c
}

// Get resolves the contribution map for ids, serving from the TTL cache
// when a fresh entry exists. Equal id lists (in any order) share one cache
// key. A repository failure replies with an empty map and is logged, never
// surfaced.
func (c *Coalescer) Get(ctx context.Context, ids []int64) map[string]decimal.Decimal {
	reply := make(chan map[string]decimal.Decimal, 1)
	select {
	case c.lookups <- lookup{ctx: ctx, ids: ids, reply: reply}:
	case <-c.done:
		return map[string]decimal.Decimal{}
	}
	select {
	case m := <-reply:
		return m
	case <-c.done:
		return map[string]decimal.Decimal{}
	}
}

// Shutdown stops the consumer loop; in-flight callers receive empty maps.
func (c *Coalescer) Shutdown() {
	close(c.done)
}

func (c *Coalescer) run() {
	for {
		select {
		case l := <-c.lookups:
			l.reply <- c.resolve(l.ctx, l.ids)
		case <-c.done:
			return
		}
	}
}

func (c *Coalescer) resolve(ctx context.Context, ids []int64) map[string]decimal.Decimal {
	key := cacheKey(ids)
	if m, ok := c.cache.Get(key); ok {
		return m
	}
	m, err := c.repo.GetContributions(ctx, ids)
	if err != nil {
		log.FromContext(ctx).Error(err)
		return map[string]decimal.Decimal{}
	}
	c.cache.Add(key, m)
	return m
}

// cacheKey canonicalizes an id list: sorted and joined, so permutations of
// the same set share one entry.
func cacheKey(ids []int64) string {
	sorted := make([]int64, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
