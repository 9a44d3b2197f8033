/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/gearsave/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file with a generated API key",
	Long: `Create a gearsave configuration file and data directory.

This command will:
- Write a config file with default codec and logging settings
- Generate a random API key for the REST API
- Create the data directory for the snapshot store

Examples:
  gearsave init
  gearsave init --config ./gearsave.yaml --data-dir ./data
  gearsave init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settingsFrom(cmd)
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")

		if config.ConfigExists(s.configPath) && !force {
			cmd.Printf("Configuration already exists at %s. Use --force to regenerate.\n", s.configPath)
			return nil
		}

		cfg, err := config.BootstrapConfig(s.configPath, s.cfg.DataDir)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		cmd.Printf("✅ Configuration created at %s\n", s.configPath)
		cmd.Printf("Data directory: %s\n", cfg.DataDir)
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
		cmd.Printf("\nYou can now start the server with:\n")
		cmd.Printf("  gearsave serve --config %s\n", s.configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration and generate a new API key")
}
