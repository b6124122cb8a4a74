package controller

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/public-forge/go-logger"
	libredis "github.com/redis/go-redis/v9"

	"github.com/fugaso-go/slot-core/internal/config"
	"github.com/fugaso-go/slot-core/internal/dto/request"
	sloterror "github.com/fugaso-go/slot-core/internal/error"
	"github.com/fugaso-go/slot-core/internal/jackpot"
	"github.com/fugaso-go/slot-core/internal/middlewares"
	"github.com/fugaso-go/slot-core/internal/requestcache"
	"github.com/fugaso-go/slot-core/internal/server"
	"github.com/fugaso-go/slot-core/internal/service"
	"github.com/fugaso-go/slot-core/internal/validators"
)

// HeaderAuthToken carries the session token minted at Login+Join and echoed
// by the client on every subsequent call.
const HeaderAuthToken = "auth-token"

// GameController serves the player-facing handle/ping endpoints: Login when
// no auth-token is present, dispatch into the session core otherwise, plus
// the demo replay variants. Business errors always surface as HTTP 200 with
// a typed Error packet; only transport failures become 5xx.
type GameController struct {
	apiConfig   *server.APIConfig
	slotConfig  *config.SlotConfig
	sessions    *service.SessionService
	cache       *requestcache.Cache
	jackpots    *jackpot.Coalescer
	redisClient *libredis.Client
}

// NewGameController initializes a GameController with its session service
// and the request-id response cache.
func NewGameController(
	apiConfig *server.APIConfig,
	slotConfig *config.SlotConfig,
	sessions *service.SessionService,
	cache *requestcache.Cache,
	jackpots *jackpot.Coalescer,
	redisClient *libredis.Client,
) *GameController {
	return &GameController{
		apiConfig:   apiConfig,
		slotConfig:  slotConfig,
		sessions:    sessions,
		cache:       cache,
		jackpots:    jackpots,
		redisClient: redisClient,
	}
}

// GetRoute returns the root the player endpoints hang off; the configured
// prefix is applied inside InitRoute.
func (c *GameController) GetRoute() string {
	return "/"
}

// InitRoute mounts {prefix}/handle, {prefix}/ping and the replay variants.
// The rate limiter and, when the server cache is enabled, the request-id
// cache middleware wrap every route of both groups; only responses a
// handler marks cacheable are stored.
func (c *GameController) InitRoute(route *gin.RouterGroup) *gin.RouterGroup {
	handlers := []gin.HandlerFunc{middlewares.NewRateLimiter(c.slotConfig, c.redisClient)}
	if c.apiConfig.Cache {
		handlers = append(handlers, requestcache.Middleware(c.cache))
	}

	g := route.Group("/"+c.apiConfig.Path, handlers...)
	g.POST("/handle", c.handle)
	g.OPTIONS("/handle", c.preflight)
	g.POST("/ping", c.ping)
	g.GET("/jackpots", c.jackpotAmounts)

	replay := route.Group("/replay/:roundId", handlers...)
	replay.POST("/handle", c.replayHandle)
	replay.POST("/ping", c.ping)
	return route
}

// handle is the single player entry point: Login+Join when no auth-token
// header is present, session dispatch otherwise.
func (c *GameController) handle(ctx *gin.Context) {
	token := ctx.GetHeader(HeaderAuthToken)
	if token == "" {
		c.login(ctx)
		return
	}
	c.dispatch(ctx, token)
}

// replayHandle drives an existing round in demo mode; the session core path
// is identical, the round id only scopes which recorded round the math
// replays.
func (c *GameController) replayHandle(ctx *gin.Context) {
	log.FromContext(ctx).Debugf("replay round %s", ctx.Param("roundId"))
	c.handle(ctx)
}

func (c *GameController) login(ctx *gin.Context) {
	req := request.GameLoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.FromContext(ctx).Error(err)
		c.errorPacket(ctx, sloterror.ErrParseFormat.Error())
		return
	}
	if errs := validators.Validate(req); errs != nil {
		server.ErrorsBadRequest(ctx, errs)
		return
	}

	out, err := c.sessions.Login(ctx.Request.Context(), service.LoginInput{
		UserName:  req.UserName,
		SessionID: req.SessionID,
		Mode:      req.Mode,
		GameName:  req.GameName,
		DemoUser:  req.DemoUser,
		IP:        clientIP(ctx),
		UserAgent: ctx.GetHeader("User-Agent"),
	})
	if err != nil {
		log.FromContext(ctx).Error(err)
		c.errorPacket(ctx, err.Error())
		return
	}

	ctx.Header(HeaderAuthToken, out.Token)
	if out.Join.ID != "" {
		ctx.Header(requestcache.HeaderRequestID, out.Join.ID)
	}
	ctx.JSON(http.StatusOK, out.Join)
}

func (c *GameController) dispatch(ctx *gin.Context, token string) {
	raw, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		log.FromContext(ctx).Error(err)
		c.errorPacket(ctx, sloterror.ErrParseFormat.Error())
		return
	}

	requestID := ctx.GetHeader(requestcache.HeaderRequestID)
	resp, err := c.sessions.Handle(ctx.Request.Context(), token, requestID, raw)
	if err != nil {
		if errors.Is(err, sloterror.ErrNotLoggedOn) {
			c.errorPacket(ctx, sloterror.ErrNotLoggedOn.Error())
			return
		}
		server.InternalErrorResponse(ctx, err.Error())
		return
	}

	if resp.ID != "" {
		ctx.Header(requestcache.HeaderRequestID, resp.ID)
	}
	if resp.Cache {
		requestcache.MarkCacheable(ctx)
	}
	ctx.JSON(http.StatusOK, resp)
}

// ping bumps the session's liveness instant and returns 204; an unknown
// token gets the registry-miss error packet instead.
func (c *GameController) ping(ctx *gin.Context) {
	token := ctx.GetHeader(HeaderAuthToken)
	if token == "" || !c.sessions.Ping(token) {
		c.errorPacket(ctx, sloterror.ErrNotLoggedOn.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

// jackpotAmounts serves the coalesced name->contribution map for the
// requested jackpot ids (comma-separated in the ids query parameter).
// Concurrent requests for the same id set share one backend query.
func (c *GameController) jackpotAmounts(ctx *gin.Context) {
	var ids []int64
	for _, part := range strings.Split(ctx.Query("ids"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			server.ErrorBadRequest(ctx, err)
			return
		}
		ids = append(ids, id)
	}
	server.SuccessResponse(ctx, c.jackpots.Get(ctx.Request.Context(), ids))
}

// preflight terminates the CORS OPTIONS probe on the mutating endpoint.
func (c *GameController) preflight(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
}

// errorPacket renders a business error the way every session-core error
// reaches the client: HTTP 200 with a typed Error response.
func (c *GameController) errorPacket(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusOK, gin.H{"type": "Error", "error": message})
}

// clientIP prefers the x-forwarded-for header over the socket peer, the
// address the wallet and tournament filters reason about.
func clientIP(ctx *gin.Context) string {
	if fwd := ctx.GetHeader("x-forwarded-for"); fwd != "" {
		return fwd
	}
	return ctx.ClientIP()
}
