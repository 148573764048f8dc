package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string
	DBLogLevel string

	SessionStore  string
	RedisHost     string
	RedisPort     string
	SessionSecret string

	GinMode         string
	HTTPAddr        string
	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string
	LogFile   string

	AdminUser     string
	AdminPassword string

	// EnforceRequestReceiver restricts accept/reject to the request's receiver.
	EnforceRequestReceiver bool
}

var defaults = map[string]interface{}{
	"DB_DRIVER":                "mysql",
	"DB_HOST":                  "localhost",
	"DB_PORT":                  "3306",
	"DB_USER":                  "collabuser",
	"DB_PASSWORD":              "collabpassword",
	"DB_NAME":                  "collabhub",
	"DB_PATH":                  "collabhub.db",
	"DB_LOG_LEVEL":             "warn",
	"SESSION_STORE":            "redis",
	"REDIS_HOST":               "localhost",
	"REDIS_PORT":               "6379",
	"SESSION_SECRET":           "default-secret-key-change-me",
	"GIN_MODE":                 "debug",
	"HTTP_ADDR":                ":8080",
	"SHUTDOWN_TIMEOUT":         "30s",
	"LOG_LEVEL":                "info",
	"LOG_FORMAT":               "console",
	"LOG_FILE":                 "",
	"ADMIN_USER":               "admin",
	"ADMIN_PASSWORD":           "",
	"ENFORCE_REQUEST_RECEIVER": false,
}

// Load reads configuration from defaults, an optional CONFIG_FILE, a .env file and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to read config file")
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		DBDriver:               strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:                 v.GetString("DB_HOST"),
		DBPort:                 v.GetString("DB_PORT"),
		DBUser:                 v.GetString("DB_USER"),
		DBPassword:             v.GetString("DB_PASSWORD"),
		DBName:                 v.GetString("DB_NAME"),
		DBPath:                 v.GetString("DB_PATH"),
		DBLogLevel:             strings.ToLower(v.GetString("DB_LOG_LEVEL")),
		SessionStore:           strings.ToLower(v.GetString("SESSION_STORE")),
		RedisHost:              v.GetString("REDIS_HOST"),
		RedisPort:              v.GetString("REDIS_PORT"),
		SessionSecret:          v.GetString("SESSION_SECRET"),
		GinMode:                v.GetString("GIN_MODE"),
		HTTPAddr:               v.GetString("HTTP_ADDR"),
		ShutdownTimeout:        v.GetDuration("SHUTDOWN_TIMEOUT"),
		LogLevel:               strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:              strings.ToLower(v.GetString("LOG_FORMAT")),
		LogFile:                v.GetString("LOG_FILE"),
		AdminUser:              v.GetString("ADMIN_USER"),
		AdminPassword:          v.GetString("ADMIN_PASSWORD"),
		EnforceRequestReceiver: v.GetBool("ENFORCE_REQUEST_RECEIVER"),
	}
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// AdminEnabled reports whether the admin API should be mounted.
func (c *Config) AdminEnabled() bool {
	return c.AdminPassword != ""
}
