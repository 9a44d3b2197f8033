/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ssargent/gearsave/pkg/gear"
	"github.com/ssargent/gearsave/pkg/logger"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <kind> <file>",
	Short: "Print a binary record as YAML or JSON",
	Long: `Decode a GearPC or GearController record and print it.

Kinds are gearpc (alias pc, player) and gearcontroller (alias controller, ctl).
Unknown byte ranges are printed as hex.

Examples:
  gearsave decode gearpc unit.bin
  gearsave decode controller ctl.bin --format json > ctl.json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settingsFrom(cmd)
		if err != nil {
			return err
		}
		kind, err := gear.ParseKind(args[0])
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")

		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[1], err)
		}

		rec, err := s.codec.Decode(kind, data)
		if err != nil {
			return fmt.Errorf("%s: %w", args[1], err)
		}

		logger.Log.WithFields(logrus.Fields{"kind": kind, "bytes": len(data)}).Debug("decoded record")
		warnLossyFloats(cmd, rec)
		return writeRecord(cmd.OutOrStdout(), rec, format)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringP("format", "f", formatYAML, "Output format (yaml or json)")
}
