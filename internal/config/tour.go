package config

import "github.com/urfave/cli/v2"

// Constants for flag names used in TourConfig.
const (
	tourURL      = "tour-url"      // tournament server base URL for commit-wins calls
	tourIP       = "tour-ip"       // this server's tournament IP, the ingestion filter
	tourName     = "tour-name"     // auth name for the tournament server
	tourPassword = "tour-password" // auth password for the tournament server
	tourLogged   = "tour-logged"   // log every ingested batch
	tourServer   = "tour-server"   // optional logical server name
)

// TourConfig parameterizes the tournament fan-out: where commit-wins calls
// go, what IP identifies awards this server must commit locally, and the
// credentials for the outbound auth handshake.
type TourConfig struct {
	URL      string
	IP       string
	Name     string
	Password string
	Logged   bool
	Server   string
}

// GetTourConfig returns a TourConfig populated from CLI context flags.
func GetTourConfig(c *cli.Context) *TourConfig {
	return &TourConfig{
		URL:      c.String(tourURL),
		IP:       c.String(tourIP),
		Name:     c.String(tourName),
		Password: c.String(tourPassword),
		Logged:   c.Bool(tourLogged),
		Server:   c.String(tourServer),
	}
}

// TourFlags defines the command-line flags for the tournament fan-out.
var TourFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    tourURL,
		Value:   "",
		Usage:   "Tournament server base URL for commit-wins dispatch",
		EnvVars: []string{"TOUR_URL"},
	},
	&cli.StringFlag{
		Name:    tourIP,
		Value:   "127.0.0.1",
		Usage:   "Local tournament IP; only awards for this IP are committed",
		EnvVars: []string{"TOUR_IP"},
	},
	&cli.StringFlag{
		Name:    tourName,
		Value:   "",
		Usage:   "Auth name for the tournament server",
		EnvVars: []string{"TOUR_NAME"},
	},
	&cli.StringFlag{
		Name:    tourPassword,
		Value:   "",
		Usage:   "Auth password for the tournament server",
		EnvVars: []string{"TOUR_PASSWORD"},
	},
	&cli.BoolFlag{
		Name:    tourLogged,
		Value:   false,
		Usage:   "Log every ingested tournament batch",
		EnvVars: []string{"TOUR_LOGGED"},
	},
	&cli.StringFlag{
		Name:    tourServer,
		Value:   "",
		Usage:   "Logical tournament server name, informational",
		EnvVars: []string{"TOUR_SERVER"},
	},
}
