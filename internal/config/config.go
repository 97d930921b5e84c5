package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds runtime settings for the items API
type Config struct {
	Addr     string
	LogLevel string
	GinMode  string
}

// LoadConfig reads settings from .env and the environment
func LoadConfig() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("ADDR", ":8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GIN_MODE", "release")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("No config file found: %v", err)
	}

	return &Config{
		Addr:     viper.GetString("ADDR"),
		LogLevel: viper.GetString("LOG_LEVEL"),
		GinMode:  viper.GetString("GIN_MODE"),
	}
}
