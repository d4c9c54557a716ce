package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Archive ArchiveConfig
	DB      DBConfig
	Redis   RedisConfig
	HTTP    HTTPConfig
}

type AppConfig struct {
	Name string
	Env  string
}

// ArchiveConfig controls persistence of finished ledger sessions. When
// disabled the program runs fully in memory and needs no database.
type ArchiveConfig struct {
	Enabled       bool
	MigrationsDir string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

// HTTPConfig controls the optional read-only archive API.
type HTTPConfig struct {
	Enabled bool
	Port    string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine; environment variables still apply.
	_ = viper.ReadInConfig()

	viper.SetDefault("APP_NAME", "record-registry")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("ARCHIVE_MIGRATIONS_DIR", "db/migrations")
	viper.SetDefault("HTTP_PORT", "8080")

	config := &Config{
		App: AppConfig{
			Name: viper.GetString("APP_NAME"),
			Env:  viper.GetString("APP_ENV"),
		},
		Archive: ArchiveConfig{
			Enabled:       viper.GetBool("ARCHIVE_ENABLED"),
			MigrationsDir: viper.GetString("ARCHIVE_MIGRATIONS_DIR"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		HTTP: HTTPConfig{
			Enabled: viper.GetBool("HTTP_ENABLED"),
			Port:    viper.GetString("HTTP_PORT"),
		},
	}

	return config, nil
}
