package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSessionPath_HomeOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	t.Setenv("FIDELIDADE_HOME", dir)

	p, err := defaultSessionPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "session.db"), p)

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
	assert.Equal(t, os.FileMode(0o700), fi.Mode().Perm())
}

func TestDefaultSessionPath_FallsBackToUserHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FIDELIDADE_HOME", "")
	t.Setenv("HOME", home)

	p, err := defaultSessionPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".fidelidade", "session.db"), p)
}

func TestResolveSessionPath_Precedence(t *testing.T) {
	t.Setenv("FIDELIDADE_HOME", t.TempDir())

	a := &app{sessionPath: "/tmp/flag.db"}
	p, err := a.resolveSessionPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/flag.db", p)

	a = &app{}
	p, err = a.resolveSessionPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.Getenv("FIDELIDADE_HOME"), "session.db"), p)
}
