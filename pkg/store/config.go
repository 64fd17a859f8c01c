package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultFile is the task file used when nothing is configured, resolved
// against the working directory.
const DefaultFile = "todolist.txt"

// Config exposes the settings read from .todocal.yaml and TODOCAL_* env.
type Config interface {
	TaskFile() string
	RollYear() bool
	LogFile() string
}

// LoadConfig reads the optional .todocal config file from TODOCAL_CONFIG_PATH
// or the working directory, then applies TODOCAL_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("file", DefaultFile)
	v.SetDefault("roll_year", false)
	v.SetDefault("log_file", "")
	v.SetConfigName(".todocal") // .yaml is implicit
	v.SetEnvPrefix("TODOCAL")
	v.AutomaticEnv()

	if override := os.Getenv("TODOCAL_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("todocal: read config: %w", err)
		}
	}

	file, err := homedir.Expand(v.GetString("file"))
	if err != nil {
		return nil, fmt.Errorf("todocal: expand task file path: %w", err)
	}
	logFile, err := homedir.Expand(v.GetString("log_file"))
	if err != nil {
		return nil, fmt.Errorf("todocal: expand log file path: %w", err)
	}

	return &fileConfig{
		File:    file,
		Roll:    v.GetBool("roll_year"),
		LogPath: logFile,
	}, nil
}

type fileConfig struct {
	File    string `json:"file"`
	Roll    bool   `json:"roll_year"`
	LogPath string `json:"log_file"`
}

func (f *fileConfig) TaskFile() string {
	return f.File
}

func (f *fileConfig) RollYear() bool {
	return f.Roll
}

func (f *fileConfig) LogFile() string {
	return f.LogPath
}
