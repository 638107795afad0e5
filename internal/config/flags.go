package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-account account name to display codes for (default: first loaded)
//	-copy copy each fresh login code to the system clipboard
//	-accounts-dir writable per-user directory with account files
//	-bundled-dir read-only directory with bundled account files
//	-base-url mobile-confirmation endpoint base URL
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-code-refresh-interval login-code refresh period (e.g., "1s")
//	-relist-delay delay before the post-action reconciling re-list
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var account string
	var copyToClipboard bool
	var accountsDir string
	var bundledDir string
	var baseURL string
	var requestTimeout time.Duration
	var codeRefreshInterval time.Duration
	var relistDelay time.Duration
	var jsonConfigPath string

	flag.StringVar(&account, "account", "", "Account name to display codes for")
	flag.BoolVar(&copyToClipboard, "copy", false, "Copy each fresh login code to the clipboard")
	flag.StringVar(&accountsDir, "accounts-dir", "", "Writable accounts directory")
	flag.StringVar(&bundledDir, "bundled-dir", "", "Read-only bundled accounts directory")
	flag.StringVar(&baseURL, "base-url", "", "Mobile-confirmation base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&codeRefreshInterval, "code-refresh-interval", 0, "Code refresh period (e.g., 1s)")
	flag.DurationVar(&relistDelay, "relist-delay", 0, "Delay before re-listing after an action")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Account:         account,
			CopyToClipboard: copyToClipboard,
		},
		Storage: Storage{
			Accounts: Accounts{
				Dir:        accountsDir,
				BundledDir: bundledDir,
			},
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			CodeRefreshInterval: codeRefreshInterval,
			RelistDelay:         relistDelay,
		},
		JSONFilePath: jsonConfigPath,
	}
}
