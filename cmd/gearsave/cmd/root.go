/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ssargent/gearsave/pkg/config"
	"github.com/ssargent/gearsave/pkg/di"
	"github.com/ssargent/gearsave/pkg/gear"
	"github.com/ssargent/gearsave/pkg/logger"
)

type ctxKey string

const settingsKey ctxKey = "settings"

// settings is what every command needs after the root command has run
type settings struct {
	configPath string
	cfg        *config.Config
	codec      *gear.Codec
}

var container *di.Container

// SetContainer injects the dependency container
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gearsave",
	Short: "gearsave - GearPC and GearController record codec",
	Long: `gearsave decodes, edits and re-encodes the GearPC and GearController
records of game save files. Unknown byte ranges are carried through
unchanged, so a decode followed by an encode reproduces the input.

Records can also be archived in a local snapshot store and served over
a REST API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		cmd.SetContext(context.WithValue(cmd.Context(), settingsKey, s))
		return nil
	},
}

// loadSettings reads the config file, applies flag overrides and sets up
// logging and the codec. A missing config file means defaults.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	if container == nil {
		return nil, errors.New("dependency container not initialized")
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	cfg := config.DefaultConfig()
	if config.ConfigExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir, _ = cmd.Flags().GetString("data-dir")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.Log.WithFields(logrus.Fields{
		"config":   configPath,
		"data_dir": cfg.DataDir,
		"strings":  cfg.Codec.StringEncoding,
	}).Debug("configuration loaded")

	codec, err := container.NewCodec(cfg.Codec)
	if err != nil {
		return nil, err
	}

	return &settings{configPath: configPath, cfg: cfg, codec: codec}, nil
}

func settingsFrom(cmd *cobra.Command) (*settings, error) {
	s, ok := cmd.Context().Value(settingsKey).(*settings)
	if !ok {
		return nil, errors.New("settings not found in context")
	}
	return s, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ~/.config/gearsave/config.yaml)")
	rootCmd.PersistentFlags().StringP("data-dir", "d", "./data", "Data directory for the snapshot store")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
