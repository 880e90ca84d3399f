package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server configuration
type ServerConfig struct {
	Port        string
	Host        string
	Environment string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Auth configuration
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Config holds all application configuration
type Config struct {
	Server      ServerConfig
	Mongo       MongoConfig
	Auth        AuthConfig
	CORSOrigins []string
}

// Default configuration values
const (
	DefaultServerPort  = "5001"
	DefaultServerHost  = ""
	DefaultEnvironment = "development"
	DefaultMongoURI    = "mongodb://localhost:27017/salesdesk"
	DefaultMongoDB     = "salesdesk"
	DefaultTokenTTLHrs = 168 // 7 days
	DefaultCORSOrigins = "http://localhost:3000"
	// Report defaults
	DefaultTopRepsLimit = 5
)

// New returns a new Config populated from the environment.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", DefaultServerPort),
			Host:        getEnv("SERVER_HOST", DefaultServerHost),
			Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  time.Duration(getEnvInt("TOKEN_TTL_HOURS", DefaultTokenTTLHrs)) * time.Hour,
		},
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", DefaultCORSOrigins)),
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
