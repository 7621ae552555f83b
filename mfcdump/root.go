package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/barnettlynn/nfctools/mfcdump/internal/config"
	"github.com/spf13/cobra"
)

const configFileName = "config.yaml"

var (
	// Global flags
	configPath string
	verbose    bool
	logFormat  string
	jsonOut    bool

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "mfcdump",
	Short: "Check and inspect MIFARE Classic dump files",
	Long: `mfcdump reads MIFARE Classic dumps in the line format written by tag
readers ("+Sector: N" headers, 32 hex characters per block, "*" for sectors
that could not be read), validates them and derives the ASCII,
access condition and value block views.

A dump is read from the named file or, if no file is given, from stdin.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: config.yaml next to the binary or in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads the config and configures slog. Flags given on the command
// line win over the config file.
func setup(cmd *cobra.Command, _ []string) error {
	path := configPath
	if path == "" {
		path = defaultConfigPath()
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}
		cfg = loaded
	}

	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	format := cfg.Log.Format
	if cmd.Flags().Changed("log-format") {
		format = logFormat
	}
	configureLogging(os.Stderr, level, format)
	slog.Debug("config", "path", path, "dumps_dir", cfg.DumpsDir)
	return nil
}

func configureLogging(w io.Writer, level slog.Level, format string) {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(w, opts)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
	}
}

// defaultConfigPath returns the first existing config.yaml next to the
// executable or in the working directory, or "" if there is none.
func defaultConfigPath() string {
	if exePath, err := os.Executable(); err == nil {
		exeConfigPath := filepath.Join(filepath.Dir(exePath), configFileName)
		if fileExists(exeConfigPath) {
			return exeConfigPath
		}
	}

	// Fallback for `go run`, where the executable is placed in a temp directory.
	if cwd, err := os.Getwd(); err == nil {
		cwdConfigPath := filepath.Join(cwd, configFileName)
		if fileExists(cwdConfigPath) {
			return cwdConfigPath
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// printJSON writes v to w as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
