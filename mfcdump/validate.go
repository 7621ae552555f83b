package main

import (
	"fmt"
	"log/slog"

	"github.com/barnettlynn/nfctools/pkg/mfclassic"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [dump]",
		Short: "Check a dump for structural and byte-level problems",
		Long: `The validate command parses a dump and reports the first problem found:
a sector without 4 or 16 blocks, a block with characters other than hex
digits or '-', a block that is not 32 characters, or a missing or malformed
sector header.

Example:
  mfcdump validate tag.mfd
  mfcdump validate --json < tag.mfd`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}
}

type validateResult struct {
	File    string `json:"file"`
	Valid   bool   `json:"valid"`
	Status  string `json:"status"`
	Kind    string `json:"kind,omitempty"`
	Error   string `json:"error,omitempty"`
	Sectors int    `json:"sectors,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	lines, name, err := readDumpLines(cmd, args)
	if err != nil {
		return err
	}

	d, verr := mfclassic.Parse(lines)
	status := mfclassic.StatusOf(verr)
	res := validateResult{File: name, Valid: verr == nil, Status: status.String()}
	if verr != nil {
		res.Kind = mfclassic.KindOf(verr).String()
		res.Error = verr.Error()
		slog.Debug("validation failed", "file", name, "error", verr)
	} else {
		res.Sectors = len(d.Sectors)
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		if err := printJSON(out, res); err != nil {
			return err
		}
	} else if verr == nil {
		fmt.Fprintf(out, "%s: OK (%d sectors)\n", name, res.Sectors)
	} else {
		fmt.Fprintf(out, "%s: %s\n", name, status)
	}
	return verr
}
