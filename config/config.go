package config

import (
	"fmt"
	"time"

	"github.com/1broseidon/llmsdk/common"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds settings for programs built on the client. Values come from
// an optional YAML file, then the environment, then a .env file in the
// working directory.
type Config struct {
	APIKey    string        `yaml:"api_key" env:"OPENAI_API_KEY" env-description:"OpenAI API key; empty sends no Authorization header"`
	BaseURL   string        `yaml:"base_url" env:"OPENAI_BASE_URL" env-default:"https://api.openai.com" env-description:"API host"`
	Timeout   time.Duration `yaml:"timeout" env:"LLMSDK_TIMEOUT" env-default:"30s" env-description:"per-call timeout"`
	LogLevel  string        `yaml:"log_level" env:"LLMSDK_LOG_LEVEL" env-default:"disabled" env-description:"debug, info, warn, error or disabled"`
	OutputDir string        `yaml:"output_dir" env:"LLMSDK_OUTPUT_DIR" env-default:"." env-description:"directory generated images are written to"`
}

// Load reads configuration from path, or from the environment alone when
// path is empty.
func Load(path string) (*Config, error) {
	// a missing .env file is not an error
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("config: %s; %s", err, desc)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values cleanenv cannot check by itself.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	if _, err := common.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c *Config) Level() common.LogLevel {
	level, _ := common.ParseLogLevel(c.LogLevel)
	return level
}

// Usage describes every supported environment variable.
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}
