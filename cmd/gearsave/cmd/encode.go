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

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <kind> <in> <out>",
	Short: "Write a YAML or JSON record back to binary",
	Long: `Encode a text record produced by 'gearsave decode' into its binary form.

Input ending in .json is read as JSON, anything else as YAML. The opaque
blocks must keep their original sizes.

Example:
  gearsave decode gearpc unit.bin > unit.yaml
  gearsave encode gearpc unit.yaml unit.bin`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settingsFrom(cmd)
		if err != nil {
			return err
		}
		kind, err := gear.ParseKind(args[0])
		if err != nil {
			return err
		}

		rec, err := readRecord(kind, args[1])
		if err != nil {
			return err
		}
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("%s: %w", args[1], err)
		}

		data := s.codec.Encode(rec)
		if err := os.WriteFile(args[2], data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[2], err)
		}

		logger.Log.WithFields(logrus.Fields{"kind": kind, "bytes": len(data)}).Debug("encoded record")
		cmd.Printf("Wrote %d bytes to %s\n", len(data), args[2])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
