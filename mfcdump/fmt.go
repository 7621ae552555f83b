package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var fmtWrite bool

func init() {
	cmd := newFmtCmd()
	cmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write the canonical dump back to the file")
	rootCmd.AddCommand(cmd)
}

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [dump]",
		Short: "Print a dump in canonical form",
		Long: `The fmt command validates a dump and prints it in canonical form:
"+Sector: N" headers, uppercase hex blocks and "*" for unreadable sectors.
With -w the file is rewritten in place.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFmt,
	}
}

func runFmt(cmd *cobra.Command, args []string) error {
	e, name, err := openEditor(cmd, args)
	if err != nil {
		return err
	}
	lines, err := e.Lines()
	if err != nil {
		return err
	}
	text := joinLines(lines)

	if !fmtWrite {
		_, err := fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	}
	if name == stdinName {
		return errors.New("-w needs a dump file")
	}
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write dump: %w", err)
	}
	slog.Info("dump rewritten", "path", name, "lines", len(lines))
	return nil
}

// joinLines joins lines with a trailing newline after each.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
