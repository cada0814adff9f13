package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where pick history lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig reads the .datepick config file (and DATEPICK_* environment
// overrides) to locate the history database.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.datepick.db")
	viper.SetConfigName(".datepick") // .yaml is implicit
	viper.SetEnvPrefix("DATEPICK")
	viper.AutomaticEnv()

	if override := os.Getenv("DATEPICK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
