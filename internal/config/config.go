package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds server configuration, bound to MEMECLASH_* environment
// variables.
type Config struct {
	Bind         string        `mapstructure:"bind"`
	Port         int           `mapstructure:"port"`
	MongoURI     string        `mapstructure:"mongo_uri"`
	MongoDB      string        `mapstructure:"mongo_db"`
	RedisAddr    string        `mapstructure:"redis_addr"`
	MaxRounds    int           `mapstructure:"max_rounds"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	JWTSecret    string        `mapstructure:"jwt_secret"`
}

// Load reads configuration from the environment with defaults suitable for
// local development.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MEMECLASH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("bind", "0.0.0.0")
	v.SetDefault("port", 8080)
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_db", "memeclash")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("max_rounds", 5)
	v.SetDefault("poll_interval", 2*time.Second)
	v.SetDefault("jwt_secret", "change-me-in-production")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
