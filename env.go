package client

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
)

// envConfig mirrors the EXTMARKET_* environment variables recognized at
// construction time.
type envConfig struct {
	BaseURL    string `envconfig:"BASE_URL"`
	Platform   string `envconfig:"PLATFORM"`
	AppVersion string `envconfig:"APP_VERSION"`
	Debug      bool   `envconfig:"DEBUG"`
}

// optionsFromEnv maps the ambient environment to construction options.
// Explicit options passed to New are applied afterwards and win.
func optionsFromEnv() ([]Option, error) {
	var cfg envConfig
	if err := envconfig.Process("extmarket", &cfg); err != nil {
		return nil, fmt.Errorf("read EXTMARKET_* environment: %w", err)
	}
	var opts []Option
	if cfg.BaseURL != "" {
		opts = append(opts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.Platform != "" {
		opts = append(opts, WithPlatform(cfg.Platform))
	}
	if cfg.AppVersion != "" {
		opts = append(opts, WithAppVersion(cfg.AppVersion))
	}
	if cfg.Debug || debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}
	return opts, nil
}

// debugLoggingRequested checks whether HTTP debug logging should be enabled
// without touching code: EXTMARKET_DEBUG=true targets this client alone,
// DEBUG=true piggybacks on a broader application debug flag.
func debugLoggingRequested() bool {
	return os.Getenv("EXTMARKET_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
