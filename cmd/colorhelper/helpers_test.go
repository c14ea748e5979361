package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/colorhelper/internal/stats"
)

// setupHome points HOME at a fresh directory so config, stats and the
// palette store stay inside the test.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func executeCommand(args ...string) (stdout, stderr string, err error) {
	root := newRootCmd()
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	root.SetOut(outBuf)
	root.SetErr(errBuf)
	root.SetArgs(args)

	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func readStats(t *testing.T, home string) stats.Stats {
	t.Helper()
	path := filepath.Join(home, ".colorhelper", "stats.json")
	_, err := os.Stat(path)
	require.NoError(t, err)
	return stats.Open(path, nil).Get()
}

func writeHomeConfig(t *testing.T, home, contents string) {
	t.Helper()
	dir := filepath.Join(home, ".colorhelper")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o644))
}
