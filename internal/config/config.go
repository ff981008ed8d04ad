package config

import (
	"errors"
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Admin password policy: at least 8 characters with a letter and a digit.
const passwordPolicyPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var errWeakAdminPassword = errors.New("admin password must be at least 8 characters and contain a letter and a digit")

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	AdminPassword      string   `mapstructure:"admin_password"`
	TokenSigningKey    string   `mapstructure:"token_signing_key"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

// Load reads the yaml config at path and overlays environment variables.
// The admin secret and connection parameters live here and nowhere else;
// nothing downstream reads the environment directly.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	envBindings := map[string]string{
		"api.environment":       "ENVIRONMENT",
		"api.port":              "PORT",
		"api.base_url":          "BASE_URL",
		"api.admin_password":    "ADMIN_PASSWORD",
		"api.token_signing_key": "TOKEN_SIGNING_KEY",
		"gin.mode":              "GIN_MODE",
		"postgres.host":         "POSTGRES_HOST",
		"postgres.port":         "POSTGRES_PORT",
		"postgres.user":         "POSTGRES_USER",
		"postgres.password":     "POSTGRES_PASSWORD",
		"postgres.db":           "POSTGRES_DB",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("v.BindEnv -> %w", err)
		}
	}

	var conf AppConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))
	})
	v.WatchConfig()

	return &conf, nil
}

func (c *AppConfig) validate() error {
	if c.API == nil || c.Gin == nil || c.Postgres == nil {
		return errors.New("config is missing the api, gin or postgres section")
	}
	if c.API.TokenSigningKey == "" {
		return errors.New("token signing key is required")
	}

	// The regex needs lookahead, which the stdlib engine does not support.
	policy := regexp2.MustCompile(passwordPolicyPattern, regexp2.None)
	ok, err := policy.MatchString(c.API.AdminPassword)
	if err != nil {
		return fmt.Errorf("policy.MatchString -> %w", err)
	}
	if !ok {
		return errWeakAdminPassword
	}

	return nil
}
