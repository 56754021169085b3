//go:build windows

package main

import "os"

// writeFileAtomic rewrites path in place. renameio does not support
// Windows, so the write is not atomic there.
func writeFileAtomic(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return os.WriteFile(path, data, perm)
}
