package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// Search Configuration
	Search SearchConfig `json:"search"`

	// Application Configuration
	App AppConfig `json:"app"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

// SearchConfig contains the full-text search engine configuration.
// An empty URL disables search: indexing becomes a no-op and every
// query reports zero results, the rest of the app keeps working.
type SearchConfig struct {
	URL string `json:"url"`
}

// AppConfig contains application-level tunables
type AppConfig struct {
	PostsPerPage int `json:"posts_per_page"`
}

// LoadConfig builds the configuration from environment variables,
// falling back to defaults for anything unset. The caller is expected
// to have loaded .env (godotenv) beforehand.
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", ""),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
		},
		Database: DatabaseConfig{
			Host:         getEnv("MYSQL_HOST", "localhost"),
			Port:         getEnv("MYSQL_PORT", "3306"),
			Username:     getEnv("MYSQL_USERNAME", "root"),
			Password:     getEnv("MYSQL_PASSWORD", ""),
			DatabaseName: getEnv("MYSQL_DATABASE", "microblog"),
			MaxOpenConns: getEnvAsInt("MYSQL_MAX_OPEN_CONNS", 50),
			MaxIdleConns: getEnvAsInt("MYSQL_MAX_IDLE_CONNS", 10),
		},
		Search: SearchConfig{
			URL: getEnv("ELASTICSEARCH_URL", ""),
		},
		App: AppConfig{
			PostsPerPage: getEnvAsInt("POSTS_PER_PAGE", 25),
		},
	}
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

// SearchEnabled reports whether a search backend is configured.
func (cfg *Config) SearchEnabled() bool {
	return cfg.Search.URL != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
