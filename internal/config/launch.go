package config

import "github.com/urfave/cli/v2"

// Constants for flag names used in LaunchConfig.
const (
	launchGamesDir       = "launch-games-dir"
	launchGamesDirNoJack = "launch-games-dir-no-jack"
	launchServiceLegacy  = "launch-service-legacy"
	launchGamesDomain    = "launch-games-domain"
	launchServiceName    = "launch-service-name"
	launchCuracaoOn      = "launch-curacao-on"
	launchCacheTTLMin    = "launch-cache-ttl-min"
)

// LaunchConfig parameterizes launch URL building and the launch-host cache.
// The directory/domain fields feed the URL builder; the TTL drives the host
// cache.
type LaunchConfig struct {
	GamesDir       string
	GamesDirNoJack string
	ServiceLegacy  string
	GamesDomain    string
	ServiceName    string
	CuracaoOn      bool
	CacheTTLMin    int
}

// GetLaunchConfig returns a LaunchConfig populated from CLI context flags.
func GetLaunchConfig(c *cli.Context) *LaunchConfig {
	return &LaunchConfig{
		GamesDir:       c.String(launchGamesDir),
		GamesDirNoJack: c.String(launchGamesDirNoJack),
		ServiceLegacy:  c.String(launchServiceLegacy),
		GamesDomain:    c.String(launchGamesDomain),
		ServiceName:    c.String(launchServiceName),
		CuracaoOn:      c.Bool(launchCuracaoOn),
		CacheTTLMin:    c.Int(launchCacheTTLMin),
	}
}

// LaunchFlags defines the command-line flags for launch URL building and the
// launch-host cache.
var LaunchFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    launchGamesDir,
		Value:   "games",
		Usage:   "Path segment for jackpot-enabled game bundles",
		EnvVars: []string{"LAUNCH_GAMES_DIR"},
	},
	&cli.StringFlag{
		Name:    launchGamesDirNoJack,
		Value:   "games-nj",
		Usage:   "Path segment for jackpot-free game bundles",
		EnvVars: []string{"LAUNCH_GAMES_DIR_NO_JACK"},
	},
	&cli.StringFlag{
		Name:    launchServiceLegacy,
		Value:   "",
		Usage:   "Legacy service path segment kept for old clients",
		EnvVars: []string{"LAUNCH_SERVICE_LEGACY"},
	},
	&cli.StringFlag{
		Name:    launchGamesDomain,
		Value:   "",
		Usage:   "Fixed games domain; empty uses a picked launch host",
		EnvVars: []string{"LAUNCH_GAMES_DOMAIN"},
	},
	&cli.StringFlag{
		Name:    launchServiceName,
		Value:   "",
		Usage:   "Service name path segment",
		EnvVars: []string{"LAUNCH_SERVICE_NAME"},
	},
	&cli.BoolFlag{
		Name:    launchCuracaoOn,
		Value:   false,
		Usage:   "Append the Curacao compliance marker to launch URLs",
		EnvVars: []string{"LAUNCH_CURACAO_ON"},
	},
	&cli.IntFlag{
		Name:    launchCacheTTLMin,
		Value:   20,
		Usage:   "Launch-host cache TTL in minutes",
		EnvVars: []string{"LAUNCH_CACHE_TTL_MIN"},
	},
}
