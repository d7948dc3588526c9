package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultSessionPath places the SQLite session under $FIDELIDADE_HOME, or
// ~/.fidelidade when unset. The directory is created 0700 since the file
// holds a bearer token.
func defaultSessionPath() (string, error) {
	dir := os.Getenv("FIDELIDADE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine user home: %w", err)
		}
		dir = filepath.Join(home, ".fidelidade")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create state dir: %w", err)
	}
	return filepath.Join(dir, "session.db"), nil
}
