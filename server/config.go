package server

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds the upload server configuration, populated from the
// environment.
type Config struct {
	// Addr is the listen address
	Addr string `env:"PAGINA_ADDR" envDefault:":8080"`

	// RulesPath points to a YAML rules file; empty means built-in defaults
	RulesPath string `env:"PAGINA_RULES"`

	// AdvisorURL is the optional classification service endpoint
	AdvisorURL string `env:"PAGINA_ADVISOR_URL"`

	// OutputDir is where the latest result and report are written
	OutputDir string `env:"PAGINA_OUTPUT_DIR" envDefault:"output"`

	// MaxFiles caps the number of files per upload
	MaxFiles int `env:"PAGINA_MAX_FILES" envDefault:"50"`

	// MaxFileSize caps a single uploaded file, in bytes
	MaxFileSize int64 `env:"PAGINA_MAX_FILE_SIZE" envDefault:"10485760"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.MaxFiles <= 0 || cfg.MaxFileSize <= 0 {
		return Config{}, fmt.Errorf("upload limits must be positive")
	}
	return cfg, nil
}
