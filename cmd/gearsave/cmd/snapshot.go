/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ssargent/gearsave/pkg/api"
	"github.com/ssargent/gearsave/pkg/gear"
	"github.com/ssargent/gearsave/pkg/logger"
	"github.com/ssargent/gearsave/pkg/storage"
)

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Archive binary records in the local snapshot store",
	Long: `Store, list, fetch and delete binary record snapshots.

Snapshots are kept in a pebble database under the data directory and
identified by KSUIDs, so listing is in creation order.`,
}

// openSnapshotStore opens the store under the configured data directory
func openSnapshotStore(s *settings) (api.SnapshotStoreCloser, error) {
	if err := os.MkdirAll(s.cfg.DataDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return container.GetSnapshotStoreFactory().OpenSnapshotStore(s.cfg.DataDir)
}

var snapshotPutCmd = &cobra.Command{
	Use:   "put <kind> <file>",
	Short: "Validate a binary record and archive it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settingsFrom(cmd)
		if err != nil {
			return err
		}
		kind, err := gear.ParseKind(args[0])
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[1], err)
		}
		if _, err := s.codec.Decode(kind, data); err != nil {
			return fmt.Errorf("%s: %w", args[1], err)
		}

		store, err := openSnapshotStore(s)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Create(string(kind), data)
		if err != nil {
			return err
		}

		logger.Log.WithFields(logrus.Fields{"id": id.String(), "kind": kind, "bytes": len(data)}).Info("snapshot stored")
		fmt.Fprintln(cmd.OutOrStdout(), id.String())
		return nil
	},
}

var snapshotGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print a snapshot as YAML or JSON, or write its bytes with --out",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settingsFrom(cmd)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		format, _ := cmd.Flags().GetString("format")

		id, err := storage.ParseID(args[0])
		if err != nil {
			return err
		}

		store, err := openSnapshotStore(s)
		if err != nil {
			return err
		}
		defer store.Close()

		snap, err := store.Read(id)
		if err != nil {
			return err
		}

		if out != "" {
			if err := os.WriteFile(out, snap.Data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			cmd.Printf("Wrote %d bytes to %s\n", len(snap.Data), out)
			return nil
		}

		kind, err := gear.ParseKind(snap.Kind)
		if err != nil {
			return err
		}
		rec, err := s.codec.Decode(kind, snap.Data)
		if err != nil {
			return fmt.Errorf("snapshot %s: %w", id, err)
		}
		warnLossyFloats(cmd, rec)
		return writeRecord(cmd.OutOrStdout(), rec, format)
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived snapshots, oldest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settingsFrom(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")

		store, err := openSnapshotStore(s)
		if err != nil {
			return err
		}
		defer store.Close()

		infos, err := store.List()
		if err != nil {
			return err
		}

		if format == "table" {
			writeSnapshotTable(cmd.OutOrStdout(), infos)
			return nil
		}
		return writeRecord(cmd.OutOrStdout(), infos, format)
	},
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settingsFrom(cmd)
		if err != nil {
			return err
		}

		id, err := storage.ParseID(args[0])
		if err != nil {
			return err
		}

		store, err := openSnapshotStore(s)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(id); err != nil {
			return err
		}

		cmd.Printf("Deleted snapshot %s\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotPutCmd, snapshotGetCmd, snapshotListCmd, snapshotDeleteCmd)

	snapshotGetCmd.Flags().StringP("out", "o", "", "Write the raw snapshot bytes to this file")
	snapshotGetCmd.Flags().StringP("format", "f", formatYAML, "Output format (yaml or json)")
	snapshotListCmd.Flags().StringP("format", "f", "table", "Output format (table, yaml or json)")
}
