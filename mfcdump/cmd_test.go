package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDump = `+Sector: 0
0a1b2c3d4e0804006263646566676869
00000000000000000000000000000000
00000000FFFFFFFF0000000001FE01FE
FFFFFFFFFFFFFF078069FFFFFFFFFFFF
+Sector: 1
*
+Sector: 2
640000009BFFFFFF6400000005FA05FA
00000000000000000000000000000000
00000000000000000000000000000000
------------FF078069FFFFFFFFFFFF
`

// runCLI executes the root command with args and stdin and returns stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	configPath, verbose, logFormat, jsonOut = "", false, "text", false
	fmtWrite, valuesDecode, infoUID = false, false, ""

	// An empty config keeps the run independent of any config.yaml nearby.
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("log:\n  level: error\n"), 0o644))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", cfgFile}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeDump(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tag.mfd")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateCommand(t *testing.T) {
	out, err := runCLI(t, testDump, "validate")
	require.NoError(t, err)
	assert.Equal(t, "stdin: OK (3 sectors)\n", out)
}

func TestValidateCommandReportsStatus(t *testing.T) {
	bad := strings.Replace(testDump, "00000000000000000000000000000000\n+Sector: 1", "0000000000000000000000000000000\n+Sector: 1", 1)
	out, err := runCLI(t, bad, "validate")
	require.Error(t, err)
	assert.Contains(t, out, "not 16 bytes (32 characters)")
}

func TestValidateCommandJSON(t *testing.T) {
	bad := strings.Replace(testDump, "+Sector: 2\n", "+Sector: 2\n00000000000000000000000000000000\n", 1)
	out, err := runCLI(t, bad, "validate", "--json")
	require.Error(t, err)

	var res validateResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Valid)
	assert.Equal(t, "invalid sector size", res.Kind)
	assert.Equal(t, "stdin", res.File)
}

func TestFmtCommandWritesCanonicalDump(t *testing.T) {
	path := writeDump(t, testDump)

	_, err := runCLI(t, "", "fmt", "-w", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Replace(testDump, "0a1b2c3d4e0804006263646566676869", "0A1B2C3D4E0804006263646566676869", 1), string(content))
}

func TestFmtCommandNeedsFileForWrite(t *testing.T) {
	_, err := runCLI(t, testDump, "fmt", "-w")
	assert.ErrorContains(t, err, "needs a dump file")
}

func TestASCIICommand(t *testing.T) {
	out, err := runCLI(t, testDump, "ascii")
	require.NoError(t, err)
	assert.Equal(t, "0A1B2C3D4E0804006263646566676869\n"+
		"00000000000000000000000000000000\n"+
		"00000000FFFFFFFF0000000001FE01FE\n"+
		"\n"+
		"640000009BFFFFFF6400000005FA05FA\n"+
		"00000000000000000000000000000000\n"+
		"00000000000000000000000000000000\n"+
		"\n", out)
}

func TestACCommand(t *testing.T) {
	out, err := runCLI(t, "", "ac", writeDump(t, testDump))
	require.NoError(t, err)
	assert.Equal(t, "+Sector: 0\nFF078069\n+Sector: 2\nFF078069\n", out)
}

func TestValuesCommand(t *testing.T) {
	out, err := runCLI(t, testDump, "values")
	require.NoError(t, err)
	assert.Equal(t, "+Sector: 0, Block: 2\n00000000FFFFFFFF0000000001FE01FE\n"+
		"+Sector: 2, Block: 0\n640000009BFFFFFF6400000005FA05FA\n", out)

	out, err = runCLI(t, testDump, "values", "--decode")
	require.NoError(t, err)
	assert.Equal(t, "Sector 0, Block 2: value=0 addr=0x01\nSector 2, Block 0: value=100 addr=0x05\n", out)
}

func TestValuesCommandJSONWithoutValueBlocks(t *testing.T) {
	out, err := runCLI(t, "+Sector: 1\n*\n", "values", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestInfoCommand(t *testing.T) {
	out, err := runCLI(t, "", "info", "--uid", "0a1b2c3d", writeDump(t, testDump))
	require.NoError(t, err)
	assert.Contains(t, out, "Dump (UID: 0A1B2C3D)\n")
	assert.Contains(t, out, "Sectors:  3 (1 unreadable, 0 with 16 blocks)")
	assert.Contains(t, out, "Blocks:   8 (1 with unknown bytes)")
	assert.Contains(t, out, "Sector  1: no keys found or dead sector")
	assert.Contains(t, out, "Sector  2: Key A X   Key B OK  AC FF078069")
}

func TestInfoCommandJSONUsesFileName(t *testing.T) {
	out, err := runCLI(t, "", "info", "--json", writeDump(t, testDump))
	require.NoError(t, err)

	var res infoResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Dump (tag.mfd)", res.Title)
	assert.Equal(t, 2, res.Roles["value"])
	assert.Equal(t, 2, res.Roles["trailer"])
	require.Len(t, res.Sectors, 3)
	assert.True(t, res.Sectors[1].Unreadable)
}

func TestCommandRejectsBrokenDump(t *testing.T) {
	_, err := runCLI(t, "00000000000000000000000000000000\n", "ascii")
	assert.ErrorContains(t, err, "missing header")
}

func TestDumpsDirResolution(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stored.mfd"), []byte(testDump), 0o644))
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("dumps_dir: "+dir+"\nlog:\n  level: error\n"), 0o644))

	_, err := runCLI(t, "", "validate", "--config", cfgFile, "stored.mfd")
	require.NoError(t, err)
}

func TestValuesCommandJSONDecodesFromDump(t *testing.T) {
	out, err := runCLI(t, testDump, "values", "--json")
	require.NoError(t, err)

	var entries []valueEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, []valueEntry{
		{Sector: 0, Block: 2, Line: "00000000FFFFFFFF0000000001FE01FE", Value: 0, Addr: 0x01},
		{Sector: 2, Block: 0, Line: "640000009BFFFFFF6400000005FA05FA", Value: 100, Addr: 0x05},
	}, entries)
}

func TestJoinLines(t *testing.T) {
	assert.Equal(t, "+Sector: 1\n*\n", joinLines([]string{"+Sector: 1", "*"}))
}
