package backup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Suffix is appended to a bank path to form its backup path.
const Suffix = ".bak"

// EnsureBackup copies the current on-disk bytes of path to path+".bak"
// unless that backup already exists, in which case it is a no-op. The copy
// preserves the original's file mode and mtime. It reports whether a backup
// was created by this call.
func EnsureBackup(path string) (bool, error) {
	target := path + Suffix
	if _, err := os.Lstat(target); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to stat backup %s: %w", target, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := os.WriteFile(target, data, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("failed to write backup %s: %w", target, err)
	}
	if err := os.Chtimes(target, info.ModTime(), info.ModTime()); err != nil {
		return false, fmt.Errorf("failed to set backup times on %s: %w", target, err)
	}
	return true, nil
}
