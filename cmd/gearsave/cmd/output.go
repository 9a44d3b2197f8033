package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/ssargent/gearsave/pkg/gear"
	"github.com/ssargent/gearsave/pkg/storage"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// writeRecord renders v as YAML or JSON
func writeRecord(w io.Writer, v interface{}, format string) error {
	switch strings.ToLower(format) {
	case formatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	case formatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want yaml or json)", format)
	}
}

// warnLossyFloats tells the user when the text form of rec will not encode
// back to the same bytes
func warnLossyFloats(cmd *cobra.Command, rec gear.Record) {
	if lossy := gear.LossyFloats(rec); len(lossy) > 0 {
		cmd.PrintErrf("warning: NaN payload in %s is lost in text form; keep the binary file or a snapshot\n",
			strings.Join(lossy, ", "))
	}
}

// readRecord loads a text record of the given kind. Files ending in .json
// are read as JSON, anything else as YAML.
func readRecord(kind gear.Kind, path string) (gear.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rec, err := gear.NewEmptyRecord(kind)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, rec)
	} else {
		err = yaml.Unmarshal(data, rec)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rec, nil
}

// writeSnapshotTable lists snapshots in table format
func writeSnapshotTable(out io.Writer, infos []storage.SnapshotInfo) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "ID\tKIND\tSIZE\tCREATED\n")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", info.ID, info.Kind, info.Size, info.CreatedAt.Format(time.RFC3339))
	}
}
