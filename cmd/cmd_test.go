// File: cmd/cmd_test.go
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a fresh root command with the persistent pre-run
// disabled, so tests exercise the subcommands without config loading.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	testRootCmd, _ := newRootCmd()
	testRootCmd.PersistentPreRunE = nil

	var out, errOut bytes.Buffer
	testRootCmd.SetOut(&out)
	testRootCmd.SetErr(&errOut)
	testRootCmd.SetArgs(args)
	err := testRootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// writeTempSheet writes stylesheet content to a temporary file and returns
// its path.
func writeTempSheet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styles.pss")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validSheet = `
MAIN {
	display: flex;
	width: 100px;
	&:hover {
		background_color: #335577;
	}
}

side_bar {
	width: 200px;
}
`

func TestRootCmd_VersionFlag(t *testing.T) {
	out, _, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestRootCmd_NoArgs(t *testing.T) {
	out, _, err := executeCommand(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Peacock compiles, checks, and generates code for UI stylesheets.")
}

func TestCheckCmd(t *testing.T) {
	t.Run("accepts a valid stylesheet", func(t *testing.T) {
		path := writeTempSheet(t, validSheet)
		out, _, err := executeCommand(t, "check", path)
		require.NoError(t, err)
		assert.Contains(t, out, "2 rules OK")
	})

	t.Run("reports a positional error for a broken stylesheet", func(t *testing.T) {
		path := writeTempSheet(t, "MAIN {\n\twidth: 100px\n}\n")
		_, errOut, err := executeCommand(t, "check", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 1 stylesheets failed")
		// The missing semicolon is discovered at the closing brace on line 3.
		assert.Contains(t, errOut, path+":3:1:")
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, _, err := executeCommand(t, "check", filepath.Join(t.TempDir(), "nope.pss"))
		require.Error(t, err)
	})

	t.Run("requires at least one argument", func(t *testing.T) {
		_, _, err := executeCommand(t, "check")
		require.Error(t, err)
	})
}

func TestGenCmd(t *testing.T) {
	t.Run("writes generated code to stdout by default", func(t *testing.T) {
		path := writeTempSheet(t, validSheet)
		out, _, err := executeCommand(t, "gen", path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "// Code generated by peacock gen; DO NOT EDIT."))
		assert.Contains(t, out, "package styles")
		assert.Contains(t, out, `Main = Sheet.Handle("MAIN")`)
		assert.Contains(t, out, `SideBar = Sheet.Handle("side_bar")`)
	})

	t.Run("honors output and package flags", func(t *testing.T) {
		path := writeTempSheet(t, validSheet)
		outFile := filepath.Join(t.TempDir(), "styles_gen.go")
		_, _, err := executeCommand(t, "gen", path, "-o", outFile, "-p", "theme", "--prefix", "Style")
		require.NoError(t, err)

		content, err := os.ReadFile(outFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), "package theme")
		assert.Contains(t, string(content), `StyleMain = Sheet.Handle("MAIN")`)
	})

	t.Run("fails on a broken stylesheet", func(t *testing.T) {
		path := writeTempSheet(t, "MAIN { bogus_prop: 1px; }")
		_, _, err := executeCommand(t, "gen", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bogus_prop")
	})
}

func TestLineCol(t *testing.T) {
	input := "abc\ndef\nghi"
	cases := []struct {
		offset, line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{4, 2, 1},
		{6, 2, 3},
		{8, 3, 1},
		{99, 3, 4},
	}
	for _, tc := range cases {
		line, col := lineCol(input, tc.offset)
		assert.Equal(t, tc.line, line, "offset %d line", tc.offset)
		assert.Equal(t, tc.col, col, "offset %d col", tc.offset)
	}
}
