package proofcli

import (
	"fmt"
	"time"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultBaseURL is the production PROOF control plane.
const DefaultBaseURL = "https://proof-api.fredhutch.org"

// DefaultTimeout bounds each request; there is no retry, so a call
// fails or succeeds within this window.
const DefaultTimeout = 30 * time.Second

// Config holds the immutable client configuration. Nothing here is
// mutated after construction, so a single client built from it is safe
// for concurrent use.
type Config struct {
	BaseURL   string        `koanf:"base_url"`
	EngineURL string        `koanf:"engine_url"`
	Timeout   time.Duration `koanf:"timeout"`
	Debug     bool          `koanf:"debug"`
}

// DefaultConfig returns the production defaults with no engine URL.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// envKeys maps the documented environment variables onto config
// paths. CROMWELLURL is the variable deployments already set for the
// workflow engine; the PROOF_ variables are client overrides.
var envKeys = map[string]string{
	"PROOF_API_URL": "base_url",
	"CROMWELLURL":   "engine_url",
	"PROOF_TIMEOUT": "timeout",
	"PROOF_DEBUG":   "debug",
}

// ConfigFromEnv builds a Config from the defaults overridden by the
// environment. This is the only place the library reads the
// environment; callers who want no hidden process-wide state construct
// a Config directly instead.
func ConfigFromEnv() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default configuration: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			// Unmapped variables are skipped by returning an empty key
			if path, ok := envKeys[key]; ok {
				return path, value
			}
			return "", nil
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return &cfg, nil
}
