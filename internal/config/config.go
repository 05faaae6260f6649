package config

import (
	"github.com/spf13/viper"
)

// Config holds the few runtime knobs the portal needs. Values come from
// the environment (or a .env file loaded by main) with local-dev defaults.
type Config struct {
	Port          string
	DatabasePath  string
	SessionSecret string
}

func Load() *Config {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DB_PATH", "jobportal.db")
	viper.SetDefault("SESSION_SECRET", "change_this_secret_for_prod")

	return &Config{
		Port:          viper.GetString("PORT"),
		DatabasePath:  viper.GetString("DB_PATH"),
		SessionSecret: viper.GetString("SESSION_SECRET"),
	}
}
