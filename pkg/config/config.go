package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// NewConfig reads the config file at path, or the default XDG location when
// path is empty. A missing file is not an error.
func NewConfig(path string) error {
	if path == "" {
		configPath, err := xdg.ConfigFile("browsercompat/config.yaml")
		if err != nil {
			return err
		}
		path = configPath
	}

	viper.SetConfigFile(path)
	viper.SetEnvPrefix("BROWSERCOMPAT")
	viper.AutomaticEnv()
	viper.SetDefault("subtree", "javascript.builtins")

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if the config file doesn't exist
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("unable to read config file: %v", err)
		}
	}
	return nil
}

// GetDataPath is the dataset file or directory.
func GetDataPath() string {
	return viper.GetString("data")
}

// GetSubtree is the dotted path of the namespace inside the dataset.
func GetSubtree() string {
	return viper.GetString("subtree")
}

// GetTargets is the browser -> minimum version map.
func GetTargets() map[string]string {
	return viper.GetStringMapString("targets")
}

// GetIgnorePatterns lists the configured ignore patterns.
func GetIgnorePatterns() []string {
	return viper.GetStringSlice("ignore")
}
