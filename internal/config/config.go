package config

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

type SQLiteConfig struct {
	Path string
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type StorageConfig struct {
	Driver   string
	Postgres DBConfig
	SQLite   SQLiteConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	TreeTTL  time.Duration
}

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// Load reads app.yaml from the working directory, or the file at path when
// set. A missing app.yaml is not an error; a missing explicit path is.
func Load(path string) error {
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("client.origin", "http://localhost:3000")
	viper.SetDefault("storage.driver", DriverSQLite)
	viper.SetDefault("sqlite.path", "social.db")
	viper.SetDefault("redis.tree-ttl", time.Hour)
	viper.SetDefault("seed.fixtures", "")

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("app")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && path == "" {
			return nil
		}
		return err
	}
	return nil
}

func Storage() StorageConfig {
	return StorageConfig{
		Driver: viper.GetString("storage.driver"),
		Postgres: DBConfig{
			Username: os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			DBName:   os.Getenv("POSTGRES_DATABASE"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		SQLite: SQLiteConfig{
			Path: viper.GetString("sqlite.path"),
		},
	}
}

// Redis returns the cache settings; an empty Addr disables caching.
func Redis() RedisConfig {
	return RedisConfig{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		TreeTTL:  viper.GetDuration("redis.tree-ttl"),
	}
}
