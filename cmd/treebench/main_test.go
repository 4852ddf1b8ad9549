package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShape(t *testing.T) {
	out, err := execute(t, shapeCmd(), "--engine", "AVL", "10", "20", "30", "40", "50", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "height 3")
	assert.Contains(t, out, "0: 30\n1: 20 40\n2: 10 25 50\n")

	out, err = execute(t, shapeCmd(), "-e", "RB", "10", "20", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "Black")
	assert.Contains(t, out, "0: 20\n1: 10 30\n")

	out, err = execute(t, shapeCmd(), "-e", "Treap", "--seed", "3", "5", "5", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "3 keys")
}

func TestShape_Errors(t *testing.T) {
	_, err := execute(t, shapeCmd(), "-e", "Splay", "1")
	assert.ErrorContains(t, err, "unknown engine")
	_, err = execute(t, shapeCmd(), "1", "x")
	assert.ErrorContains(t, err, `key "x"`)
	_, err = execute(t, shapeCmd())
	assert.Error(t, err)
}

func TestRunShow(t *testing.T) {
	dir := t.TempDir()
	configPath = filepath.Join(dir, "treebench.yaml")
	t.Cleanup(func() { configPath = "" })
	require.NoError(t, os.WriteFile(configPath, []byte("size: 2000\nsteps: 2\nsearches: 50\n"), 0o600))

	out, err := execute(t, runCmd(), "--out", dir, "--format", "yaml", "--engines", "AVL,Treap")
	require.NoError(t, err)
	assert.Contains(t, out, "AVL insert")
	assert.NotContains(t, out, "RB insert")

	saved, err := filepath.Glob(filepath.Join(dir, "benchmark_results_2000_steps2_*.yaml"))
	require.NoError(t, err)
	require.Len(t, saved, 1)

	shown, err := execute(t, showCmd(), saved[0])
	require.NoError(t, err)
	assert.Contains(t, shown, "Treap search")
	assert.Contains(t, shown, "2,000")
}
