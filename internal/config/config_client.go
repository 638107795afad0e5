package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied by [GetClientConfig] when the merged configuration leaves
// a field unset.
const (
	DefaultBaseURL             = "https://steamcommunity.com/mobileconf"
	DefaultRequestTimeout      = 15 * time.Second
	DefaultCodeRefreshInterval = time.Second
	DefaultRelistDelay         = time.Second
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version string printed at startup.
	Version string

	// Account selects the account to display codes for; empty means the
	// first loaded account.
	Account string

	// CopyToClipboard copies every freshly rotated login code to the system
	// clipboard.
	CopyToClipboard bool
}

// ClientAdapter holds network settings used by the confirmation transport.
type ClientAdapter struct {
	// BaseURL is the mobile-confirmation endpoint base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage groups account store settings.
type ClientStorage struct {
	// Accounts holds the account directory settings.
	Accounts Accounts
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// CodeRefreshInterval defines how often the login code is regenerated.
	CodeRefreshInterval time.Duration
	// RelistDelay is the pause before the post-action reconciling re-list.
	RelistDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains transport settings.
	Adapter ClientAdapter
	// Storage contains account store settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, applies defaults (per-user accounts
// directory, production base URL, 15s timeout, 1s refresh and re-list
// intervals), and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:         cfg.App.Version,
			Account:         cfg.App.Account,
			CopyToClipboard: cfg.App.CopyToClipboard,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Accounts: cfg.Storage.Accounts,
		},
		Workers: ClientWorkers{
			CodeRefreshInterval: cfg.Workers.CodeRefreshInterval,
			RelistDelay:         cfg.Workers.RelistDelay,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Storage.Accounts.Dir == "" {
		if base, err := os.UserConfigDir(); err == nil {
			cfg.Storage.Accounts.Dir = filepath.Join(base, "go-steam-guard", "accounts")
		}
	}
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultBaseURL
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.CodeRefreshInterval <= 0 {
		cfg.Workers.CodeRefreshInterval = DefaultCodeRefreshInterval
	}
	if cfg.Workers.RelistDelay <= 0 {
		cfg.Workers.RelistDelay = DefaultRelistDelay
	}
}
