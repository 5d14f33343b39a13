package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-lists/pkg/models"
	"github.com/mattsolo1/grove-lists/pkg/parser"
	"github.com/mattsolo1/grove-lists/pkg/service"
)

const EnvPrefix = "LISTS"

var (
	cfgFile string
	verbose bool
)

// InitConfig configures the global viper instance from the --config flag,
// ~/.config/lists/config.yaml and LISTS_* environment variables.
func InitConfig() {
	cobra.CheckErr(Configure(viper.GetViper(), cfgFile))
}

// Configure points v at file, or at the default config location when file
// is empty, and reads it. A missing default config file is not an error.
func Configure(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		v.AddConfigPath(filepath.Join(home, ".config", "lists"))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("priorities", models.DefaultPriorities)
	v.SetDefault("log_level", "warn")
	v.SetDefault("default_filter", string(models.FilterAll))
	v.SetDefault("default_sort", string(models.SortNone))
	v.SetDefault("default_group", string(models.GroupNone))
}

// Load builds the service configuration from v.
func Load(v *viper.Viper) (*service.Config, error) {
	var formats map[string]parser.Format
	if err := v.UnmarshalKey("formats", &formats); err != nil {
		return nil, fmt.Errorf("parse formats: %w", err)
	}

	return &service.Config{
		Priorities:    models.NormalizePriorities(v.GetStringSlice("priorities")),
		Formats:       formats,
		DefaultFilter: v.GetString("default_filter"),
		DefaultSort:   v.GetString("default_sort"),
		DefaultGroup:  v.GetString("default_group"),
	}, nil
}

// NewLogger returns a stderr logger at the configured level, or Debug when
// --verbose is set.
func NewLogger(v *viper.Viper) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(v.GetString("log_level"))
	if err != nil {
		level = logrus.WarnLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}

func InitService() (*service.Service, error) {
	v := viper.GetViper()

	config, err := Load(v)
	if err != nil {
		return nil, err
	}

	logger := NewLogger(v)
	svc, err := service.New(config, logrus.NewEntry(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize service: %w", err)
	}
	return svc, nil
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/lists/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
