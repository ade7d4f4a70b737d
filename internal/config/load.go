package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// defaultAvatar is the placeholder avatar assigned to the stock roster.
const defaultAvatar = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_640.png"

// defaultRoster is the stock five-user roster, used when no roster is
// configured. Intended for development; deployments override it via the
// config file.
func defaultRoster() []map[string]interface{} {
	entries := []struct {
		id       int64
		name     string
		login    string
		password string
	}{
		{1, "Нурбай", "UserNyrbai", "111"},
		{2, "Роман", "UserRoman", "222"},
		{3, "Влад", "UserVlad", "333"},
		{4, "Михаил", "UserMikhail", "444"},
		{5, "Аскербек", "UserAskerbek", "555"},
	}

	roster := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		roster = append(roster, map[string]interface{}{
			"id":       e.id,
			"name":     e.name,
			"login":    e.login,
			"password": e.password,
			"ava":      defaultAvatar,
		})
	}
	return roster
}

// Load reads configuration from environment variables and an optional
// config file. Environment variables (TASKAPI_ prefix) take precedence
// over file values, which take precedence over defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.bcrypt_cost", 0)
	v.SetDefault("roster", defaultRoster())

	// Optional config file: ./config.yaml (or any format viper recognizes)
	v.SetConfigName("config")
	v.AddConfigPath(".")

	// Environment variables: TASKAPI_SERVER_PORT, TASKAPI_SERVER_LOG_LEVEL, ...
	v.SetEnvPrefix("TASKAPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
