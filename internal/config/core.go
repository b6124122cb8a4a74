package config

import "github.com/urfave/cli/v2"

// Constants for flag names used by the session-core configuration.
const (
	adminHistoryLimit = "admin-history-limit" // admin_config.history_limit
	adminTakePercent  = "admin-take-percent"  // take/win step: Bernoulli take rate in percent
	adminWinCeiling   = "admin-win-ceiling"   // take/win step: absolute win ceiling, 0 disables

	dispatcherCleanSec = "dispatcher-clean-sec" // dispatcher_config.clean_sec, idle sweep period

	proxyAlias       = "proxy-alias"        // account-service variant: demo | http
	proxyStartAmount = "proxy-start-amount" // proxy_config.start_amount, demo seed balance
	proxyCurrency    = "proxy-currency"     // proxy_config.currency, overrides user currency when set
	proxyWalletURL   = "proxy-wallet-url"   // base URL for the http account service

	jackpotTTLSec = "jackpot-ttl-sec" // jackpot coalescer cache TTL
)

// AdminConfig carries the slot admin's knobs: the history clamp and the per-spin
// take/win-ceiling step.
type AdminConfig struct {
	HistoryLimit int
	TakePercent  float64
	WinCeiling   float64
}

// DispatcherConfig carries the Session Registry's idle-sweep period; the
// idle threshold itself (cleanDuration) is fixed at one hour.
type DispatcherConfig struct {
	CleanSec int
}

// ProxyConfig selects and parameterizes the account-service variant behind
// the slot proxy.
type ProxyConfig struct {
	Alias       string
	StartAmount float64
	Currency    string
	WalletURL   string
}

// JackpotConfig carries the Jackpot Coalescer's cache TTL.
type JackpotConfig struct {
	TTLSec int
}

// GetAdminConfig returns an AdminConfig populated from CLI context flags.
func GetAdminConfig(c *cli.Context) *AdminConfig {
	return &AdminConfig{
		HistoryLimit: c.Int(adminHistoryLimit),
		TakePercent:  c.Float64(adminTakePercent),
		WinCeiling:   c.Float64(adminWinCeiling),
	}
}

// GetDispatcherConfig returns a DispatcherConfig populated from CLI context
// flags.
func GetDispatcherConfig(c *cli.Context) *DispatcherConfig {
	return &DispatcherConfig{
		CleanSec: c.Int(dispatcherCleanSec),
	}
}

// GetProxyConfig returns a ProxyConfig populated from CLI context flags.
func GetProxyConfig(c *cli.Context) *ProxyConfig {
	return &ProxyConfig{
		Alias:       c.String(proxyAlias),
		StartAmount: c.Float64(proxyStartAmount),
		Currency:    c.String(proxyCurrency),
		WalletURL:   c.String(proxyWalletURL),
	}
}

// GetJackpotConfig returns a JackpotConfig populated from CLI context flags.
func GetJackpotConfig(c *cli.Context) *JackpotConfig {
	return &JackpotConfig{
		TTLSec: c.Int(jackpotTTLSec),
	}
}

// CoreFlags defines the command-line flags for the session-core subsystems:
// the slot admin, the registry sweeper, the slot proxy and the jackpot
// coalescer. Each flag is linked to an environment variable, allowing for
// configuration via the environment as well as the CLI.
var CoreFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    adminHistoryLimit,
		Value:   20,
		Usage:   "Maximum rounds a history request may return",
		EnvVars: []string{"ADMIN_HISTORY_LIMIT"},
	},
	&cli.Float64Flag{
		Name:    adminTakePercent,
		Value:   80,
		Usage:   "Take rate (percent) for the win-ceiling redraw policy",
		EnvVars: []string{"ADMIN_TAKE_PERCENT"},
	},
	&cli.Float64Flag{
		Name:    adminWinCeiling,
		Value:   0,
		Usage:   "Absolute win ceiling for the redraw policy, 0 disables",
		EnvVars: []string{"ADMIN_WIN_CEILING"},
	},
	&cli.IntFlag{
		Name:    dispatcherCleanSec,
		Value:   3600,
		Usage:   "Idle-session sweep period in seconds",
		EnvVars: []string{"DISPATCHER_CLEAN_SEC"},
	},
	&cli.StringFlag{
		Name:    proxyAlias,
		Value:   "demo",
		Usage:   "Account service variant: demo (local ledger) or http (external wallet)",
		EnvVars: []string{"PROXY_ALIAS"},
	},
	&cli.Float64Flag{
		Name:    proxyStartAmount,
		Value:   3000,
		Usage:   "Seed balance for a freshly auto-registered demo player",
		EnvVars: []string{"PROXY_START_AMOUNT"},
	},
	&cli.StringFlag{
		Name:    proxyCurrency,
		Value:   "",
		Usage:   "Currency override applied at login; empty keeps the user's stored currency",
		EnvVars: []string{"PROXY_CURRENCY"},
	},
	&cli.StringFlag{
		Name:    proxyWalletURL,
		Value:   "",
		Usage:   "Base URL of the external account service (http alias only)",
		EnvVars: []string{"PROXY_WALLET_URL"},
	},
	&cli.IntFlag{
		Name:    jackpotTTLSec,
		Value:   5,
		Usage:   "Jackpot contribution cache TTL in seconds",
		EnvVars: []string{"JACKPOT_TTL_SEC"},
	},
}
