package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/public-forge/go-logger"
	libredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	_ "github.com/fugaso-go/slot-core/docs"
	"github.com/fugaso-go/slot-core/internal/config"
	controller "github.com/fugaso-go/slot-core/internal/controllers"
	"github.com/fugaso-go/slot-core/internal/database"
	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/ipservice"
	"github.com/fugaso-go/slot-core/internal/jackpot"
	"github.com/fugaso-go/slot-core/internal/launch"
	"github.com/fugaso-go/slot-core/internal/redis"
	"github.com/fugaso-go/slot-core/internal/repository"
	"github.com/fugaso-go/slot-core/internal/requestcache"
	"github.com/fugaso-go/slot-core/internal/server"
	"github.com/fugaso-go/slot-core/internal/service"
	"github.com/fugaso-go/slot-core/internal/session"
	"github.com/fugaso-go/slot-core/internal/tournament"
)

func initController(router *gin.Engine, ctrl controller.BaseController) {
	handler := router.Group(ctrl.GetRoute())
	ctrl.InitRoute(handler)
}

var ConfigModule = fx.Module("config",
	fx.Provide(config.GetLogConfig),
	fx.Provide(config.GetSlotConfig),
	fx.Provide(config.GetAdminConfig),
	fx.Provide(config.GetDispatcherConfig),
	fx.Provide(config.GetProxyConfig),
	fx.Provide(config.GetJackpotConfig),
	fx.Provide(config.GetTourConfig),
	fx.Provide(config.GetLaunchConfig),
	fx.Provide(config.GetIPServiceConfig),
	fx.Provide(redis.GetRedisConfig),
)

var Repositories = fx.Provide(
	repository.NewUserRepository,
	repository.NewRoundRepository,
	repository.NewPercentRepository,
	repository.NewPromoRepository,
	repository.NewTournamentRepository,
	repository.NewRateRepository,
	repository.NewLaunchRepository,
	repository.NewJackpotRepository,
	// The sequence backend follows redis_config: Redis INCR when the redis
	// sequence backend is enabled, native Postgres sequences otherwise.
	func(cfg *redis.Config, client *libredis.Client) interfaces.ISequenceRepository {
		if cfg.Sequences {
			return repository.NewRedisSequenceRepository(client)
		}
		return repository.NewPgSequenceRepository()
	},
)

var Services = fx.Provide(
	service.NewUserService,
	service.NewSessionService,
)

// Core provides the actor-owned session subsystems: the process-wide
// registry, the request-id response cache, the jackpot coalescer, the
// launch-host picker, the tournament fan-out holder and its outbound
// commit client, and the IP-geolocation client.
var Core = fx.Provide(
	func(cfg *config.DispatcherConfig) *session.Registry {
		return session.NewRegistry(session.DefaultCleanDuration, time.Duration(cfg.CleanSec)*time.Second)
	},
	func() *requestcache.Cache {
		return requestcache.New(0, 0)
	},
	func(cfg *config.JackpotConfig, repo interfaces.IJackpotRepository) *jackpot.Coalescer {
		return jackpot.New(repo, time.Duration(cfg.TTLSec)*time.Second)
	},
	func(cfg *config.LaunchConfig, repo interfaces.ILaunchRepository) *launch.Picker {
		return launch.New(repo, time.Duration(cfg.CacheTTLMin)*time.Minute)
	},
	ipservice.New,
	tournament.NewCommitClient,
	tournament.NewHolder,
)

var Controllers = fx.Provide(
	controller.NewUserController,
	controller.NewStatusController,
	controller.NewWalletController,
	controller.NewGameController,
	controller.NewTournamentController,
	controller.NewLaunchController,
)

var RootModule = fx.Module("server",
	Repositories,
	Services,
	Core,
	Controllers,
	ConfigModule,
	database.DBModule,
	server.Module,
	redis.Module,
	fx.Provide(log.NewLogger),
	fx.Invoke(func(router *gin.Engine,

		userController *controller.UserController,
		statusController *controller.StatusController,
		walletController *controller.WalletController,
		gameController *controller.GameController,
		tournamentController *controller.TournamentController,
		launchController *controller.LaunchController,
	) {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		initController(router, userController)
		initController(router, statusController)
		initController(router, walletController)
		initController(router, gameController)
		initController(router, tournamentController)
		initController(router, launchController)
	}),
	fx.Invoke(func(lc fx.Lifecycle, registry *session.Registry, coalescer *jackpot.Coalescer, holder *tournament.Holder) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				holder.Shutdown()
				coalescer.Shutdown()
				registry.Shutdown()
				return nil
			},
		})
	}),
)
