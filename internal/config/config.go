package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Port            string `mapstructure:"PORT"`
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	RedisURL        string `mapstructure:"REDIS_URL"`
	AdminToken      string `mapstructure:"ADMIN_TOKEN"`
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`
}

func Read() *AppConfig {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	bindEnvVariables()
	setDefaults()

	var appConfig AppConfig
	err := viper.Unmarshal(&appConfig)
	if err != nil {
		panic(fmt.Errorf("fatal error unmarshalling config: %w", err))
	}

	return &appConfig
}

func bindEnvVariables() {
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("DATABASE_URL")
	_ = viper.BindEnv("REDIS_URL")
	_ = viper.BindEnv("ADMIN_TOKEN")
	_ = viper.BindEnv("SESSION_TTL_HOURS")
}

func setDefaults() {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("SESSION_TTL_HOURS", 72)
}
