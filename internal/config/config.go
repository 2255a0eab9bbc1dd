package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Planner struct {
		CourseURL      string `yaml:"course_url" env:"PLANNER_COURSE_URL"`
		SubmitURL      string `yaml:"submit_url" env:"PLANNER_SUBMIT_URL"`
		RequestTimeout string `yaml:"request_timeout" env:"PLANNER_REQUEST_TIMEOUT"`
	} `yaml:"planner"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	err := loadFromEnv(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Planner defaults
	config.Planner.CourseURL = "http://localhost:4000/courses"
	config.Planner.SubmitURL = "http://localhost:4000/plan"
	config.Planner.RequestTimeout = "10s"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Planner.CourseURL == "" {
		return fmt.Errorf("planner course URL is required")
	}

	if config.Planner.SubmitURL == "" {
		return fmt.Errorf("planner submit URL is required")
	}

	if _, err := url.Parse(config.Planner.CourseURL); err != nil {
		return fmt.Errorf("invalid planner course URL: %w", err)
	}

	if _, err := url.Parse(config.Planner.SubmitURL); err != nil {
		return fmt.Errorf("invalid planner submit URL: %w", err)
	}

	if _, err := time.ParseDuration(config.Planner.RequestTimeout); err != nil {
		return fmt.Errorf("invalid planner request timeout format: %w", err)
	}

	return nil
}

// GetRequestTimeout returns the planner request timeout as a duration.
// The format was validated when the configuration was loaded.
func (c *Config) GetRequestTimeout() time.Duration {
	timeout, err := time.ParseDuration(c.Planner.RequestTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return timeout
}
