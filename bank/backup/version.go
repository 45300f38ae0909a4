package backup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// versionedStem matches a filename stem that already carries a version
// suffix: a zero-padded counter of at least three digits after "_v".
var versionedStem = regexp.MustCompile(`^(.*)_v(\d{3,})$`)

// NextVersionedName derives the next version-suffixed sibling name for path.
// A stem without a version suffix starts at "_v001"; a suffixed stem has its
// counter incremented with the width kept at three digits. Past 999 the
// counter simply widens ("_v1000"). The function is pure: it never touches
// the filesystem, so the caller owns collision handling.
func NextVersionedName(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	prefix, num := stem, 0
	if m := versionedStem.FindStringSubmatch(stem); m != nil {
		prefix = m[1]
		num, _ = strconv.Atoi(m[2])
	}
	return filepath.Join(dir, fmt.Sprintf("%s_v%03d%s", prefix, num+1, ext))
}

// NextFreeVersionedName derives the next versioned name that does not
// collide with an existing file, skipping forward past names already on
// disk.
func NextFreeVersionedName(path string) (string, error) {
	name := NextVersionedName(path)
	for {
		_, err := os.Lstat(name)
		if errors.Is(err, fs.ErrNotExist) {
			return name, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", name, err)
		}
		name = NextVersionedName(name)
	}
}
