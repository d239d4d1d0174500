package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/fieldlinehq/fieldline/pkg/constants"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Record store configuration
	APIURL         string
	APIKey         string
	AuthScheme     string
	Tenant         string
	Timeout        time.Duration
	UseMemoryStore bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.fieldline.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Bind the FIELDLINE_* environment variables
	bindStoreEnv()

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Search for config in standard locations
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".fieldline")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	// Build config from viper
	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Format:  viper.GetString("format"),

		// Config file
		ConfigFile: viper.ConfigFileUsed(),

		// Record store configuration
		APIURL:         viper.GetString("api_url"),
		APIKey:         viper.GetString("api_key"),
		AuthScheme:     viper.GetString("auth_scheme"),
		Tenant:         viper.GetString("tenant"),
		Timeout:        viper.GetDuration("timeout"),
		UseMemoryStore: viper.GetBool("use_memory_store"),

		// Logging configuration
		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Set defaults
	if config.Timeout == 0 {
		config.Timeout = constants.DefaultHTTPTimeout
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// Try to load .env files in order of precedence
	// .env.local overrides .env
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// bindStoreEnv explicitly binds the record store environment variables to
// Viper so both the bare and FIELDLINE_-prefixed names work.
func bindStoreEnv() {
	bindings := [][]string{
		{"api_url", "FIELDLINE_API_URL", "API_URL"},
		{"api_key", "FIELDLINE_API_KEY", "API_KEY"},
		{"auth_scheme", "FIELDLINE_AUTH_SCHEME", "AUTH_SCHEME"},
		{"tenant", "FIELDLINE_TENANT", "TENANT"},
		{"timeout", "FIELDLINE_TIMEOUT", "TIMEOUT"},
		{"use_memory_store", "FIELDLINE_USE_MEMORY_STORE", "USE_MEMORY_STORE"},
	}

	for _, binding := range bindings {
		if err := viper.BindEnv(binding...); err != nil {
			// Log warning but continue - this isn't critical
			fmt.Fprintf(os.Stderr, "Warning: failed to bind environment variable %s: %v\n", binding[0], err)
		}
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
