/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/gearsave/pkg/gear"
	"github.com/ssargent/gearsave/pkg/logger"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <kind> <file>...",
	Short: "Check that records survive a decode/encode cycle",
	Long: `Decode each file and encode it again, reporting the first byte that differs.
The command fails if any file does not reproduce exactly.

Example:
  gearsave verify gearpc saves/*.bin`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settingsFrom(cmd)
		if err != nil {
			return err
		}
		kind, err := gear.ParseKind(args[0])
		if err != nil {
			return err
		}

		files := args[1:]
		failed := 0
		for _, path := range files {
			data, err := os.ReadFile(path)
			if err != nil {
				cmd.Printf("FAIL      %s: %v\n", path, err)
				failed++
				continue
			}

			var mismatch *gear.MismatchError
			switch err := s.codec.Verify(kind, data); {
			case err == nil:
				cmd.Printf("OK        %s (%d bytes)\n", path, len(data))
			case errors.As(err, &mismatch):
				cmd.Printf("MISMATCH  %s at offset %d (input %d bytes, output %d bytes)\n",
					path, mismatch.Offset, mismatch.WantLen, mismatch.GotLen)
				failed++
			default:
				cmd.Printf("FAIL      %s: %v\n", path, err)
				failed++
			}
		}

		logger.Log.WithField("files", len(files)).WithField("failed", failed).Debug("verify finished")
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed verification", failed, len(files))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
