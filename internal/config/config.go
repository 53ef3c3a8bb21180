package config

// Config holds all application configuration. It is constructed once at
// startup, validated, and passed explicitly into the components that need
// it — never mutated afterwards.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth" validate:"required"`
	Estimator EstimatorConfig `mapstructure:"estimator" validate:"required"`
	Admin     AdminConfig     `mapstructure:"admin" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the session token lifetime. Tokens remain
	// valid for their full lifetime; there is no refresh or revocation.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// BcryptCost controls the work factor for password hashing.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=0,lte=31"`
}

// EstimatorConfig contains settings for the external duration-prediction
// service.
type EstimatorConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`

	// TimeoutSeconds bounds the single prediction attempt so a stalled
	// estimator cannot occupy a request handler.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}

// AdminConfig holds the credentials used to seed the first admin account
// on an empty user table.
type AdminConfig struct {
	Email    string `mapstructure:"email" validate:"required,email"`
	Password string `mapstructure:"password" validate:"required,min=8"`
}
