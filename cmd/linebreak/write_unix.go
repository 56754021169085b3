//go:build !windows

package main

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeFileAtomic replaces path with data through a temporary file in the
// same directory, keeping the permissions of an existing file.
func writeFileAtomic(path string, data []byte) error {
	return renameio.WriteFile(path, data, filePerm(path))
}

func filePerm(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}
