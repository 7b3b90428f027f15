package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Mode        string        `mapstructure:"mode"`
	Port        int           `mapstructure:"port"`
	BaseURL     string        `mapstructure:"base_url"`
	CORSOrigin  string        `mapstructure:"cors_origin"`
	ReadLimit   int64         `mapstructure:"read_limit"`
	PingPeriod  time.Duration `mapstructure:"ping_period"`
	MsgLimit    int           `mapstructure:"msg_limit"`
	MsgInterval time.Duration `mapstructure:"msg_interval"`
}

func Load() (*Config, error) {
	// Deployments keep BASE_URL / PORT / CORS_ORIGIN in a .env file.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)
	v.SetConfigFile(fileName)

	v.SetDefault("mode", "release")
	v.SetDefault("port", 5000)
	v.SetDefault("base_url", "http://localhost:5000")
	v.SetDefault("cors_origin", "*")
	v.SetDefault("read_limit", 65536)
	v.SetDefault("ping_period", "54s")
	v.SetDefault("msg_limit", 0)
	v.SetDefault("msg_interval", "1s")

	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("base_url", "BASE_URL")
	_ = v.BindEnv("cors_origin", "CORS_ORIGIN")

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	log.Info().Str("module", "config").Str("mode", cfg.Mode).Int("port", cfg.Port).Str("origin", cfg.CORSOrigin).Msg("config ready")
	return &cfg, nil
}
