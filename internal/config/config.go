package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig  `mapstructure:"server" validate:"required"`
	Auth   AuthConfig    `mapstructure:"auth"`
	Roster []RosterEntry `mapstructure:"roster" validate:"required,min=1,dive"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	// BcryptCost is the cost used when hashing roster passwords at startup.
	// Zero means bcrypt's default cost.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=0,lte=31"`
}

// RosterEntry describes one pre-provisioned user. The roster is fixed for
// the process lifetime: no registration, no removal, no credential rotation.
// A plaintext password is hashed before the directory is built, so only the
// hash lives in memory afterwards. Config files can set hashed_password
// instead (see cmd/hash-generator) to keep plaintext secrets out of the
// file entirely; it takes precedence over password.
type RosterEntry struct {
	ID             int64  `mapstructure:"id" validate:"required,gt=0"`
	Name           string `mapstructure:"name"`
	Login          string `mapstructure:"login" validate:"required"`
	Password       string `mapstructure:"password" validate:"required_without=HashedPassword"`
	HashedPassword string `mapstructure:"hashed_password"`
	Ava            string `mapstructure:"ava"`
}
