package config

import "github.com/urfave/cli/v2"

// Constants for flag names used in IPServiceConfig.
const (
	ipServiceURL = "ip-service-url"
	ipServiceKey = "ip-service-key"
)

// IPServiceConfig points at the external IP-geolocation service consulted at
// login for country resolution.
type IPServiceConfig struct {
	URL string
	Key string
}

// GetIPServiceConfig returns an IPServiceConfig populated from CLI context
// flags.
func GetIPServiceConfig(c *cli.Context) *IPServiceConfig {
	return &IPServiceConfig{
		URL: c.String(ipServiceURL),
		Key: c.String(ipServiceKey),
	}
}

// IPServiceFlags defines the command-line flags for the IP service client.
var IPServiceFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    ipServiceURL,
		Value:   "",
		Usage:   "IP geolocation service URL; empty disables country resolution",
		EnvVars: []string{"IP_SERVICE_URL"},
	},
	&cli.StringFlag{
		Name:    ipServiceKey,
		Value:   "",
		Usage:   "IP geolocation service API key",
		EnvVars: []string{"IP_SERVICE_KEY"},
	},
}
