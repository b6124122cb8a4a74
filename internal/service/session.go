package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/public-forge/go-logger"
	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/accountservice"
	"github.com/fugaso-go/slot-core/internal/admin"
	"github.com/fugaso-go/slot-core/internal/config"
	"github.com/fugaso-go/slot-core/internal/dispatcher"
	sloterror "github.com/fugaso-go/slot-core/internal/error"
	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/ipservice"
	"github.com/fugaso-go/slot-core/internal/mathengine"
	"github.com/fugaso-go/slot-core/internal/mathengine/demomath"
	"github.com/fugaso-go/slot-core/internal/proxy"
	"github.com/fugaso-go/slot-core/internal/server"
	"github.com/fugaso-go/slot-core/internal/session"
)

// LoginInput carries everything the handle endpoint resolves before asking
// the session service to log a player in.
type LoginInput struct {
	UserName  string
	SessionID string
	Mode      string
	GameName  string
	DemoUser  string
	IP        string
	UserAgent string
}

// LoginOutput is what a successful Login+Join produces: the minted auth
// token and the Join packet carrying the first request-id nonce.
type LoginOutput struct {
	Token string
	Join  dispatcher.Response
}

// SessionService builds and registers sessions and routes player requests
// to their actors. It is the seam between the HTTP layer and the
// actor-owned core: everything behind Login/Handle runs inside exactly one
// session's actor.
type SessionService struct {
	apiCfg   *server.APIConfig
	adminCfg *config.AdminConfig
	proxyCfg *config.ProxyConfig
	slotCfg  *config.SlotConfig

	registry *session.Registry
	users    interfaces.IUserService
	rounds   interfaces.IRoundRepository
	percents interfaces.IPercentRepository
	promos   interfaces.IPromoRepository
	retry    interfaces.IRetryService
	geo      *ipservice.Client
}

// NewSessionService constructs the session service. No retry service is
// wired here, so s.retry stays nil and the proxy skips deferred Result
// retries.
func NewSessionService(
	apiCfg *server.APIConfig,
	adminCfg *config.AdminConfig,
	proxyCfg *config.ProxyConfig,
	slotCfg *config.SlotConfig,
	registry *session.Registry,
	users interfaces.IUserService,
	rounds interfaces.IRoundRepository,
	percents interfaces.IPercentRepository,
	promos interfaces.IPromoRepository,
	geo *ipservice.Client,
) *SessionService {
	return &SessionService{
		apiCfg:   apiCfg,
		adminCfg: adminCfg,
		proxyCfg: proxyCfg,
		slotCfg:  slotCfg,
		registry: registry,
		users:    users,
		rounds:   rounds,
		percents: percents,
		promos:   promos,
		geo:      geo,
	}
}

// Login performs the full Login+Join sequence: resolve the account service
// by alias, log the user into the wallet, initialize Admin (resuming any
// open round), start the session actor, register it (displacing any
// previous session for the same user), and emit the Join packet with the
// first nonce.
func (s *SessionService) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	account, err := s.accountByAlias(in.Mode)
	if err != nil {
		return LoginOutput{}, err
	}

	px := proxy.New(account, s.retry)
	loginReq := interfaces.LoginRequest{Auth: in.UserName, IP: in.IP, UserAgent: in.UserAgent}
	if in.DemoUser != "" {
		id, parseErr := uuid.Parse(in.DemoUser)
		if parseErr != nil {
			return LoginOutput{}, sloterror.ErrParseFormat
		}
		loginReq.DemoUserID = &id
	}
	res, err := px.Login(ctx, loginReq)
	if err != nil {
		return LoginOutput{}, err
	}

	country := ""
	if s.geo != nil {
		if country, err = s.geo.Resolve(ctx, in.IP); err != nil {
			log.FromContext(ctx).Warnf("country lookup failed for %s: %v", in.IP, err)
		}
	}

	engine := s.buildEngine(res.MaxWin, res.MaxStake)
	ad := admin.New(engine, admin.Deps{
		RoundRepo:    s.rounds,
		PercentRepo:  s.percents,
		PromoRepo:    s.promos,
		HistoryLimit: s.adminCfg.HistoryLimit,
	})
	if err := ad.Init(ctx, res.UserID, in.GameName, res.Currency); err != nil {
		return LoginOutput{}, err
	}

	disp := dispatcher.New(ad, px)
	actor := session.New(res.UserID, disp, px)
	token := s.MintToken(res.UserID, time.Now())
	s.registry.Register(ctx, res.UserID, token, actor)

	join, err := actor.Join(res.Balance)
	if err != nil {
		return LoginOutput{}, err
	}
	log.FromContext(ctx).Infof("session login: user=%d game=%s country=%s", res.UserID, in.GameName, country)
	return LoginOutput{Token: token, Join: join}, nil
}

// Handle routes a player request to the session bound to token. A missing
// session is the registry-miss case and yields ErrNotLoggedOn.
func (s *SessionService) Handle(ctx context.Context, token, requestID string, raw []byte) (dispatcher.Response, error) {
	actor, ok := s.registry.Lookup(token)
	if !ok {
		return dispatcher.Response{}, sloterror.ErrNotLoggedOn
	}
	return actor.Submit(ctx, requestID, raw), nil
}

// Ping bumps the session's liveness instant; false means no session is
// bound to token.
func (s *SessionService) Ping(token string) bool {
	return s.registry.Ping(token)
}

// Disconnect stops the session bound to userID and reports whether an actor
// acknowledged the stop.
func (s *SessionService) Disconnect(userID uint, gameSessionID string) bool {
	return s.registry.Disconnect(userID, gameSessionID)
}

// Online reports the last-60s live session count for metrics.
func (s *SessionService) Online() int {
	return s.registry.Online()
}

// State reports the raw registry index sizes for metrics.
func (s *SessionService) State() (sessions int, clients int) {
	return s.registry.State()
}

// MintToken derives the opaque session token: hex HMAC-SHA-256 of the
// server secret over "{userId}:{unixMillis}".
func (s *SessionService) MintToken(userID uint, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(s.apiCfg.JWTSecret))
	fmt.Fprintf(mac, "%d:%d", userID, at.UnixMilli())
	return hex.EncodeToString(mac.Sum(nil))
}

// accountByAlias resolves the account-service variant: demo (the local
// transactional ledger) unless the http alias is configured and requested.
func (s *SessionService) accountByAlias(mode string) (interfaces.IAccountService, error) {
	alias := strings.ToLower(mode)
	if alias == "" {
		alias = strings.ToLower(s.proxyCfg.Alias)
	}
	switch alias {
	case "", "demo":
		return accountservice.NewDemo(s.users, s.proxyCfg.Currency, decimal.NewFromFloat(s.proxyCfg.StartAmount)), nil
	case "http":
		if s.proxyCfg.WalletURL == "" {
			return nil, fmt.Errorf("proxy alias http requires a wallet url")
		}
		return accountservice.NewHTTP(accountservice.DefaultHTTPConfig(s.proxyCfg.WalletURL)), nil
	default:
		return nil, fmt.Errorf("unknown proxy alias %q", alias)
	}
}

// buildEngine assembles the math engine for a fresh session: the reference
// demomath engine wrapped by the take/win-ceiling policy, seeded with its
// own random source.
func (s *SessionService) buildEngine(maxWin, maxStake decimal.Decimal) mathengine.Engine {
	engine := demomath.New(demomath.Config{
		MultiplierThree:       decimal.NewFromFloat(s.slotCfg.MultiplierThree),
		MultiplierTwo:         decimal.NewFromFloat(s.slotCfg.MultiplierTwo),
		ThreeMatchProbability: s.slotCfg.ThreeMatchProbability,
		TwoMatchProbability:   s.slotCfg.TwoMatchProbability,
		MaxWin:                maxWin,
		MaxStake:              maxStake,
	})

	ceiling := decimal.NewFromFloat(s.adminCfg.WinCeiling)
	policy := admin.NewTakePolicy(engine, s.adminCfg.TakePercent/100, ceiling)
	policy.SetRand(rand.New(rand.NewSource(time.Now().UnixNano())))
	return policy
}
