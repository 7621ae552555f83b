package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/barnettlynn/nfctools/pkg/mfclassic"
	"github.com/spf13/cobra"
)

var infoUID string

func init() {
	cmd := newInfoCmd()
	cmd.Flags().StringVar(&infoUID, "uid", "", "tag UID in hex, shown in the title")
	rootCmd.AddCommand(cmd)
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [dump]",
		Short: "Summarize a dump",
		Long: `The info command prints sector and block counts per role and, for every
readable sector, whether Key A and Key B are known and its access condition
bytes.

Example:
  mfcdump info tag.mfd
  mfcdump info --uid 0A1B2C3D < tag.mfd`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInfo,
	}
}

type sectorInfo struct {
	Sector     int    `json:"sector"`
	Unreadable bool   `json:"unreadable"`
	Blocks     int    `json:"blocks,omitempty"`
	KeyA       bool   `json:"key_a_known"`
	KeyB       bool   `json:"key_b_known"`
	AccessBits string `json:"access_bits,omitempty"`
}

type infoResult struct {
	Title   string            `json:"title"`
	Summary mfclassic.Summary `json:"summary"`
	Roles   map[string]int    `json:"roles"`
	Sectors []sectorInfo      `json:"sector_info"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	e, _, err := openEditor(cmd, args)
	if err != nil {
		return err
	}
	if infoUID != "" {
		uid, err := hex.DecodeString(infoUID)
		if err != nil {
			return fmt.Errorf("--uid: %w", err)
		}
		e.UID = uid
	}

	res, err := buildInfo(e)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(cmd.OutOrStdout(), res)
	}
	printInfo(cmd.OutOrStdout(), res)
	return nil
}

func buildInfo(e *mfclassic.Editor) (infoResult, error) {
	d := e.Dump()
	sum := d.Summary()
	res := infoResult{
		Title:   e.Title("Dump"),
		Summary: sum,
		Roles:   make(map[string]int, len(sum.Roles)),
	}
	for role, n := range sum.Roles {
		res.Roles[role.String()] = n
	}
	for _, s := range d.Sectors {
		si := sectorInfo{Sector: s.Number, Unreadable: s.Unreadable, Blocks: s.Len()}
		if t, ok := s.Trailer(); ok {
			tr, err := mfclassic.SplitTrailer(t.Line)
			if err != nil {
				return infoResult{}, err
			}
			si.KeyA = tr.KeyAKnown()
			si.KeyB = tr.KeyBKnown()
			si.AccessBits = tr.AccessBits
		}
		res.Sectors = append(res.Sectors, si)
	}
	return res, nil
}

func printInfo(w io.Writer, res infoResult) {
	sum := res.Summary
	fmt.Fprintln(w, res.Title)
	fmt.Fprintf(w, "  Sectors:  %d (%d unreadable, %d with 16 blocks)\n", sum.Sectors, sum.Unreadable, sum.LargeSector)
	fmt.Fprintf(w, "  Blocks:   %d (%d with unknown bytes)\n", sum.Blocks, sum.Unknown)
	for _, role := range []mfclassic.Role{mfclassic.RoleUIDManufacturer, mfclassic.RoleValue, mfclassic.RoleData, mfclassic.RoleTrailer} {
		fmt.Fprintf(w, "    %-18s %d\n", role.String()+":", sum.Roles[role])
	}
	for _, si := range res.Sectors {
		if si.Unreadable {
			fmt.Fprintf(w, "  Sector %2d: no keys found or dead sector\n", si.Sector)
			continue
		}
		fmt.Fprintf(w, "  Sector %2d: Key A %s  Key B %s  AC %s\n", si.Sector, knownLabel(si.KeyA), knownLabel(si.KeyB), si.AccessBits)
	}
}

func knownLabel(ok bool) string {
	if ok {
		return "OK"
	}
	return "X "
}
