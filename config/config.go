package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/spf13/viper"
)

type AppConfig struct {
	AppPort        int
	APIBaseURL     string
	SessionSecret  string
	SessionCookie  string
	TimeoutSeconds int
}

var (
	lock      = &sync.Mutex{}
	appConfig *AppConfig
)

func GetConfig() (*AppConfig, error) {
	if appConfig != nil {
		return appConfig, nil
	}

	lock.Lock()
	defer lock.Unlock()

	if appConfig != nil {
		return appConfig, nil
	}

	appConfig, err := initConfig()
	return appConfig, err
}

func initConfig() (*AppConfig, error) {
	var finalConfig AppConfig

	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetConfigName("app.config")
	viper.SetConfigType("json")
	err := viper.ReadInConfig()
	if err != nil {
		finalConfig.AppPort = getEnvIntOrDefault("APP_PORT", 8080)
		finalConfig.APIBaseURL = getEnvOrDefault("API_BASE_URL", "http://localhost:3000")
		finalConfig.SessionSecret = getEnvOrDefault("SESSION_SECRET", "")
		finalConfig.SessionCookie = getEnvOrDefault("SESSION_COOKIE", "jwt")
		// 0 means no timeout; the backend is trusted to answer eventually.
		finalConfig.TimeoutSeconds = getEnvIntOrDefault("HTTP_TIMEOUT_SECONDS", 0)
		return &finalConfig, nil
	}

	finalConfig.AppPort = viper.GetInt("server.port")
	finalConfig.APIBaseURL = viper.GetString("api.baseurl")
	finalConfig.SessionSecret = viper.GetString("session.secret")
	finalConfig.SessionCookie = viper.GetString("session.cookie")
	finalConfig.TimeoutSeconds = viper.GetInt("api.timeoutseconds")
	if finalConfig.SessionCookie == "" {
		finalConfig.SessionCookie = "jwt"
	}

	fmt.Printf("Using config file: %s\n\n", viper.ConfigFileUsed())

	return &finalConfig, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
