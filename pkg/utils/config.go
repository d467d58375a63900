package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Data     DataConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// DataConfig covers the flat-file mirror and registration policy knobs.
// MirrorDir holds one pipe-delimited file per role. DefaultBarangay is
// assigned to identifier-role accounts promoted from the approval queue.
type DataConfig struct {
	MirrorDir       string
	DefaultBarangay string
	MinPasswordLen  int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MIRROR_DIR", "data/")
	viper.SetDefault("DEFAULT_BARANGAY", "Central")
	viper.SetDefault("MIN_PASSWORD_LEN", 6)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Data: DataConfig{
			MirrorDir:       viper.GetString("MIRROR_DIR"),
			DefaultBarangay: viper.GetString("DEFAULT_BARANGAY"),
			MinPasswordLen:  viper.GetInt("MIN_PASSWORD_LEN"),
		},
	}

	return config, nil
}
