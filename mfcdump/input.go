package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/barnettlynn/nfctools/pkg/mfclassic"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const stdinName = "stdin"

// readDumpLines reads the dump named by args[0], resolved against the
// configured dumps directory, or stdin when no name is given.
func readDumpLines(cmd *cobra.Command, args []string) ([]string, string, error) {
	if len(args) == 0 {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return nil, "", errors.New("no dump file given and stdin is a terminal")
		}
		content, err := io.ReadAll(in)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return mfclassic.SplitLines(string(content)), stdinName, nil
	}

	path := cfg.ResolveDump(args[0])
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read dump: %w", err)
	}
	slog.Debug("dump loaded", "path", path, "bytes", len(content))
	return mfclassic.SplitLines(string(content)), path, nil
}

// openEditor reads a dump and opens an editing session on it.
func openEditor(cmd *cobra.Command, args []string) (*mfclassic.Editor, string, error) {
	lines, name, err := readDumpLines(cmd, args)
	if err != nil {
		return nil, "", err
	}
	e, err := mfclassic.NewEditor(lines)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", name, err)
	}
	if name != stdinName {
		e.FileName = filepath.Base(name)
	}
	return e, name, nil
}
