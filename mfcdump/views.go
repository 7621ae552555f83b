package main

import (
	"fmt"
	"log/slog"

	"github.com/barnettlynn/nfctools/pkg/mfclassic"
	"github.com/spf13/cobra"
)

var valuesDecode bool

func init() {
	rootCmd.AddCommand(newASCIICmd())
	rootCmd.AddCommand(newACCmd())

	cmd := newValuesCmd()
	cmd.Flags().BoolVarP(&valuesDecode, "decode", "d", false, "decode value blocks to integers")
	rootCmd.AddCommand(cmd)
}

func newASCIICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ascii [dump]",
		Short: "Print block data for ASCII rendering, without sector trailers",
		Long: `The ascii command prints every block of every readable sector, one per
line. Sector trailers (keys and access conditions) are replaced by an
empty line and headers are left out.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args, (*mfclassic.Editor).ASCIIView)
		},
	}
}

func newACCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ac [dump]",
		Short: "Print the access condition bytes of every sector",
		Long: `The ac command prints, for every readable sector, its header and the
4 access condition bytes of its trailer. Bytes from sectors with 16 blocks
are prefixed with '*'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args, (*mfclassic.Editor).AccessConditionView)
		},
	}
}

func newValuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "values [dump]",
		Short: "List value blocks",
		Long: `The values command lists every value block as a
"+Sector: N, Block: B" line followed by the block. With --decode the
value and address byte are printed instead of the raw block.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValues,
	}
}

func runView(cmd *cobra.Command, args []string, view func(*mfclassic.Editor) (string, error)) error {
	e, _, err := openEditor(cmd, args)
	if err != nil {
		return err
	}
	out, err := view(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

type valueEntry struct {
	Sector int    `json:"sector"`
	Block  int    `json:"block"`
	Line   string `json:"line"`
	Value  int32  `json:"value"`
	Addr   byte   `json:"addr"`
}

func runValues(cmd *cobra.Command, args []string) error {
	e, name, err := openEditor(cmd, args)
	if err != nil {
		return err
	}
	view, err := e.ValueBlockView()
	if err != nil {
		return err
	}
	if view == "" {
		slog.Info("no value blocks in dump", "file", name)
		if jsonOut {
			return printJSON(cmd.OutOrStdout(), []valueEntry{})
		}
		return nil
	}
	if !valuesDecode && !jsonOut {
		_, err = fmt.Fprint(cmd.OutOrStdout(), view)
		return err
	}

	entries, err := valueEntries(e.Dump())
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(cmd.OutOrStdout(), entries)
	}
	for _, v := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "Sector %d, Block %d: value=%d addr=0x%02X\n", v.Sector, v.Block, v.Value, v.Addr)
	}
	return nil
}

// valueEntries decodes every value block of d in sector and block order.
func valueEntries(d *mfclassic.Dump) ([]valueEntry, error) {
	var entries []valueEntry
	for _, s := range d.Sectors {
		for _, b := range s.Blocks {
			if b.Role() != mfclassic.RoleValue {
				continue
			}
			vb, err := mfclassic.DecodeValueBlock(b.Line)
			if err != nil {
				return nil, fmt.Errorf("sector %d block %d: %w", s.Number, b.Index(), err)
			}
			entries = append(entries, valueEntry{
				Sector: s.Number,
				Block:  b.Index(),
				Line:   string(b.Line),
				Value:  vb.Value,
				Addr:   vb.Addr,
			})
		}
	}
	return entries, nil
}
