// Package config handles loading and validation of application configuration
// from environment variables and potentially configuration files.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"github.com/veralum/veralum-backend/logger"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"

	// DefaultContactRecipient receives inquiry notifications when no
	// override address is configured.
	DefaultContactRecipient = "inquiries@veralum.com"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
}

// EmailConfig holds configuration for sending emails through Resend.
type EmailConfig struct {
	FromAddress      string `mapstructure:"FROM_ADDRESS" yaml:"from_address"`
	FromName         string `mapstructure:"FROM_NAME" yaml:"from_name"`
	ResendAPIKey     string `mapstructure:"RESEND_API_KEY" yaml:"resend_api_key"`
	ContactRecipient string `mapstructure:"CONTACT_RECIPIENT" yaml:"contact_recipient"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server ServerConfig `mapstructure:"SERVER" yaml:"server"`
	Email  EmailConfig  `mapstructure:"EMAIL" yaml:"email"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

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

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, binds environment variables to config struct fields,
// unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("EMAIL.FROM_ADDRESS", "no-reply@veralum.com")
	v.SetDefault("EMAIL.FROM_NAME", "Veralum")
	v.SetDefault("EMAIL.CONTACT_RECIPIENT", DefaultContactRecipient)
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind environment variables
	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		// Email config
		{"EMAIL.FROM_ADDRESS", "EMAIL_FROM_ADDRESS"},
		{"EMAIL.FROM_NAME", "EMAIL_FROM_NAME"},
		{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		{"EMAIL.CONTACT_RECIPIENT", "CONTACT_RECIPIENT"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	env := v.GetString("SERVER.ENVIRONMENT")
	log.Infow("Configuration loaded",
		"environment", env,
		"server_port", v.GetString("SERVER.PORT"),
		"allowed_origins", v.GetString("SERVER.ALLOWED_ORIGINS"),
		"contact_recipient", logger.MaskEmail(v.GetString("EMAIL.CONTACT_RECIPIENT")),
		"resend_api_key", logger.MaskSensitiveString(v.GetString("EMAIL.RESEND_API_KEY"), 3, 2),
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
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	// Validate AllowedOrigins format if not wildcard
	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}

	// Validate Email Config
	if cfg.Email.FromAddress == "" {
		return fmt.Errorf("email from address is required")
	}
	if cfg.Email.ResendAPIKey == "" {
		return fmt.Errorf("resend API key is required")
	}
	if cfg.Email.ContactRecipient == "" {
		// Defaults cover this unless the operator explicitly sets an empty
		// value; treat that as a misconfiguration rather than silently
		// dropping notifications.
		return fmt.Errorf("contact recipient is required")
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
