// Package config handles loading and validation of application configuration
// from environment variables and an optional YAML configuration file.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lumbunggroup/lumbung-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// DeliveryMode selects how validated contact submissions are transmitted.
type DeliveryMode string

const (
	// DeliveryEmail sends submissions to the company inbox through Resend.
	DeliveryEmail DeliveryMode = "email"
	// DeliverySimulated waits a fixed delay and always succeeds.
	DeliverySimulated DeliveryMode = "simulated"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
	FrontendURL    string      `mapstructure:"FRONTEND_URL" yaml:"frontend_url"`
	// TrustedProxies is a list of CIDR ranges or IPs of trusted reverse proxies.
	// If empty, X-Forwarded-For headers are ignored entirely.
	TrustedProxies         []string `mapstructure:"TRUSTED_PROXIES" yaml:"trusted_proxies"`
	ShutdownTimeoutSeconds int      `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS" yaml:"shutdown_timeout_seconds"`
}

// ShutdownTimeout is the grace period for in-flight requests on shutdown.
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// EmailConfig holds configuration for sending emails.
type EmailConfig struct {
	FromAddress  string `mapstructure:"FROM_ADDRESS" yaml:"from_address"`
	FromName     string `mapstructure:"FROM_NAME" yaml:"from_name"`
	ResendAPIKey string `mapstructure:"RESEND_API_KEY" yaml:"resend_api_key"`
}

// ContactConfig configures the contact form pipeline.
type ContactConfig struct {
	DeliveryMode DeliveryMode `mapstructure:"DELIVERY_MODE" yaml:"delivery_mode"`
	// Recipient is the inbox that receives contact submissions.
	Recipient            string `mapstructure:"RECIPIENT" yaml:"recipient"`
	SimulatedDelayMillis int    `mapstructure:"SIMULATED_DELAY_MILLIS" yaml:"simulated_delay_millis"`
	// DeliveryTimeoutSeconds bounds one delivery attempt; 0 leaves it unbounded.
	DeliveryTimeoutSeconds int `mapstructure:"DELIVERY_TIMEOUT_SECONDS" yaml:"delivery_timeout_seconds"`
	SessionTTLMinutes      int `mapstructure:"SESSION_TTL_MINUTES" yaml:"session_ttl_minutes"`
	SessionSweepSeconds    int `mapstructure:"SESSION_SWEEP_SECONDS" yaml:"session_sweep_seconds"`
	MaxSessions            int `mapstructure:"MAX_SESSIONS" yaml:"max_sessions"`
}

func (c ContactConfig) SimulatedDelay() time.Duration {
	return time.Duration(c.SimulatedDelayMillis) * time.Millisecond
}

func (c ContactConfig) DeliveryTimeout() time.Duration {
	return time.Duration(c.DeliveryTimeoutSeconds) * time.Second
}

func (c ContactConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func (c ContactConfig) SweepInterval() time.Duration {
	return time.Duration(c.SessionSweepSeconds) * time.Second
}

// Config aggregates all application configuration sections.
type Config struct {
	Server  ServerConfig  `mapstructure:"SERVER" yaml:"server"`
	Email   EmailConfig   `mapstructure:"EMAIL" yaml:"email"`
	Contact ContactConfig `mapstructure:"CONTACT" yaml:"contact"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

var validate = validator.New()

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.TRUSTED_PROXIES", []string{}) // Empty = trust no one
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("SERVER.SHUTDOWN_TIMEOUT_SECONDS", 15)
	v.SetDefault("EMAIL.FROM_NAME", "Lumbung Group Website")
	v.SetDefault("CONTACT.DELIVERY_MODE", DeliverySimulated)
	v.SetDefault("CONTACT.RECIPIENT", "support@lumbunggroup.co.id")
	v.SetDefault("CONTACT.SIMULATED_DELAY_MILLIS", 2000)
	v.SetDefault("CONTACT.DELIVERY_TIMEOUT_SECONDS", 0)
	v.SetDefault("CONTACT.SESSION_TTL_MINUTES", 30)
	v.SetDefault("CONTACT.SESSION_SWEEP_SECONDS", 60)
	v.SetDefault("CONTACT.MAX_SESSIONS", 10000)
	v.SetDefault("LOG_LEVEL", "info")
}

// LoadConfig loads configuration using Viper: defaults first, then the YAML
// file named by CONFIG_FILE (if set), then environment variables. The result
// is validated before it is returned.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		{"SERVER.FRONTEND_URL", "FRONTEND_URL"},
		{"SERVER.TRUSTED_PROXIES", "TRUSTED_PROXIES"},
		{"SERVER.SHUTDOWN_TIMEOUT_SECONDS", "SHUTDOWN_TIMEOUT_SECONDS"},
		// Email config
		{"EMAIL.FROM_ADDRESS", "EMAIL_FROM_ADDRESS"},
		{"EMAIL.FROM_NAME", "EMAIL_FROM_NAME"},
		{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		// Contact config
		{"CONTACT.DELIVERY_MODE", "CONTACT_DELIVERY_MODE"},
		{"CONTACT.RECIPIENT", "CONTACT_RECIPIENT"},
		{"CONTACT.SIMULATED_DELAY_MILLIS", "CONTACT_SIMULATED_DELAY_MILLIS"},
		{"CONTACT.DELIVERY_TIMEOUT_SECONDS", "CONTACT_DELIVERY_TIMEOUT_SECONDS"},
		{"CONTACT.SESSION_TTL_MINUTES", "CONTACT_SESSION_TTL_MINUTES"},
		{"CONTACT.SESSION_SWEEP_SECONDS", "CONTACT_SESSION_SWEEP_SECONDS"},
		{"CONTACT.MAX_SESSIONS", "CONTACT_MAX_SESSIONS"},
	}
	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	if err := v.BindEnv("CONFIG_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind CONFIG_FILE: %w", err)
	}
	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		log.Infow("Configuration file loaded", "path", path)
	}

	log.Infow("Configuration loaded",
		"environment", v.GetString("SERVER.ENVIRONMENT"),
		"server_port", v.GetString("SERVER.PORT"),
		"allowed_origins", v.GetStringSlice("SERVER.ALLOWED_ORIGINS"),
		"trusted_proxies", v.GetStringSlice("SERVER.TRUSTED_PROXIES"),
		"delivery_mode", v.GetString("CONTACT.DELIVERY_MODE"),
		"recipient", logger.MaskEmail(v.GetString("CONTACT.RECIPIENT")),
	)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("Configuration validated successfully")
	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	// Validate Server Config
	switch cfg.Server.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("unknown server environment %q", cfg.Server.Environment)
	}
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if strings.HasPrefix(origin, "*.") {
				continue
			}
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}
	if cfg.Server.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("server shutdown timeout must be positive")
	}

	// Validate Contact config
	if err := validateContactConfig(&cfg.Contact); err != nil {
		return err
	}

	// Email config only matters when submissions are actually emailed
	if cfg.Contact.DeliveryMode == DeliveryEmail {
		if cfg.Email.FromAddress == "" {
			return fmt.Errorf("email from address is required")
		}
		if err := validate.Var(cfg.Email.FromAddress, "email"); err != nil {
			return fmt.Errorf("invalid email from address %q", cfg.Email.FromAddress)
		}
		if cfg.Email.ResendAPIKey == "" {
			return fmt.Errorf("resend API key is required")
		}
	}

	return nil
}

func validateContactConfig(cfg *ContactConfig) error {
	switch cfg.DeliveryMode {
	case DeliveryEmail, DeliverySimulated:
	default:
		return fmt.Errorf("unknown contact delivery mode %q", cfg.DeliveryMode)
	}
	if cfg.Recipient == "" {
		return fmt.Errorf("contact recipient is required")
	}
	if err := validate.Var(cfg.Recipient, "email"); err != nil {
		return fmt.Errorf("invalid contact recipient %q", cfg.Recipient)
	}
	if cfg.SimulatedDelayMillis < 0 {
		return fmt.Errorf("contact simulated delay must not be negative")
	}
	if cfg.DeliveryTimeoutSeconds < 0 {
		return fmt.Errorf("contact delivery timeout must not be negative")
	}
	if cfg.SessionTTLMinutes <= 0 {
		return fmt.Errorf("contact session TTL must be positive")
	}
	if cfg.SessionSweepSeconds <= 0 {
		return fmt.Errorf("contact session sweep interval must be positive")
	}
	if cfg.MaxSessions <= 0 {
		return fmt.Errorf("contact max sessions must be positive")
	}
	return nil
}

// containsWildcard checks if the list of allowed origins contains the wildcard "*".
func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
