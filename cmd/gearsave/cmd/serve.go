/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ssargent/gearsave/pkg/api"
	"github.com/ssargent/gearsave/pkg/logger"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the gearsave REST API server.

Requests to /api/v1 must carry the X-API-Key header with the key from the
configuration file. Run 'gearsave init' first to generate one.

Examples:
  gearsave serve
  gearsave serve --port 9000 --bind 0.0.0.0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settingsFrom(cmd)
		if err != nil {
			return err
		}
		cfg := s.cfg

		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			cfg.Bind, _ = cmd.Flags().GetString("bind")
		}

		if cfg.Security.APIKey == "" || cfg.Security.APIKey == "auto" {
			return errors.New("no API key configured (run 'gearsave init' first)")
		}

		store, err := openSnapshotStore(s)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cmd.Printf("🚀 Starting gearsave server on %s:%d\n", cfg.Bind, cfg.Port)
		cmd.Printf("📁 Data directory: %s\n", cfg.DataDir)

		starter := container.GetServerFactory().CreateServerStarter()
		err = starter.StartServer(ctx, store, s.codec, api.ServerConfig{
			Port:          cfg.Port,
			Bind:          cfg.Bind,
			APIKey:        cfg.Security.APIKey,
			MaxRecordSize: int64(cfg.Security.MaxRecordSize),
		})
		if err != nil {
			return err
		}

		logger.Log.Info("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind server to")
}
