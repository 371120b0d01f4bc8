package config

import "time"

type Config struct {
	App       AppConfig       `env-prefix:"APP_"`
	HTTP      HTTPConfig      `env-prefix:"HTTP_"`
	Database  DatabaseConfig  `env-prefix:"DB_"`
	Auth      AuthConfig      `env-prefix:"AUTH_"`
	RateLimit RateLimitConfig `env-prefix:"RATE_LIMIT_"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type HTTPConfig struct {
	Addr string `env:"ADDR" env-default:":8000"`
}

type DatabaseConfig struct {
	Port     string `env:"PORT" env-default:"5432"`
	Host     string `env:"HOST" env-default:"localhost"`
	Name     string `env:"NAME" env-default:"postgres"`
	User     string `env:"USER" env-default:"user"`
	Password string `env:"PASSWORD"`
}

type AuthConfig struct {
	SecretKey        string        `env:"SECRET_KEY"`
	RefreshSecretKey string        `env:"REFRESH_SECRET_KEY"`
	AccessExpire     time.Duration `env:"ACCESS_EXPIRE" env-default:"15m"`
	RefreshExpire    time.Duration `env:"REFRESH_EXPIRE" env-default:"168h"`
}

type RateLimitConfig struct {
	Capacity   int     `env:"CAPACITY" env-default:"50"`
	RefillRate float64 `env:"REFILL_RATE" env-default:"5"`
}
