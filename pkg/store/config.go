package store

import (
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries everything a sync run needs from the environment.
type Config interface {
	NotesRoot() string
	Email() string
	Password() string
	CachePath() string
}

// LoadConfig reads an optional .garsync config file (home dir or cwd) and the
// OBS_PATH, GARMIN_EMAIL and GARMIN_PASSWORD environment variables. All three
// values are required.
func LoadConfig() (Config, error) {
	viper.SetConfigName(".garsync") // .yaml is implicit
	viper.SetDefault("cache_path", "~/.garsync/cache")

	_ = viper.BindEnv("obs_path", "OBS_PATH")
	_ = viper.BindEnv("email", "GARMIN_EMAIL")
	_ = viper.BindEnv("password", "GARMIN_PASSWORD")

	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &fileConfig{
		ObsPath:   viper.GetString("obs_path"),
		GarEmail:  viper.GetString("email"),
		GarPass:   viper.GetString("password"),
		CacheBase: viper.GetString("cache_path"),
	}

	var missing []string
	if cfg.ObsPath == "" {
		missing = append(missing, "OBS_PATH")
	}
	if cfg.GarEmail == "" {
		missing = append(missing, "GARMIN_EMAIL")
	}
	if cfg.GarPass == "" {
		missing = append(missing, "GARMIN_PASSWORD")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

type fileConfig struct {
	ObsPath   string `json:"obs_path"`
	GarEmail  string `json:"email"`
	GarPass   string `json:"password"`
	CacheBase string `json:"cache_path"`
}

func (f *fileConfig) NotesRoot() string { return f.ObsPath }
func (f *fileConfig) Email() string     { return f.GarEmail }
func (f *fileConfig) Password() string  { return f.GarPass }
func (f *fileConfig) CachePath() string { return f.CacheBase }
