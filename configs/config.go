package config

import (
	"os"
)

type ServerConfig struct {
	Addr   string
	DBPath string
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Addr:   getEnvOrDefault("AQUASHOP_ADDR", ":5002"),
		DBPath: getEnvOrDefault("AQUASHOP_DB", "aquashop.db"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
