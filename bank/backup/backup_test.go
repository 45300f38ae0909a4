package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEnsureBackup_CreatesOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mybank.npb")
	first := []byte("original bytes")
	require.NoError(t, os.WriteFile(path, first, 0o640))
	mtime := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	created, err := EnsureBackup(path)
	require.NoError(t, err)
	require.True(t, created)

	got, err := os.ReadFile(path + Suffix)
	require.NoError(t, err)
	require.Equal(t, first, got)

	info, err := os.Stat(path + Suffix)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	require.True(t, info.ModTime().Equal(mtime), "backup keeps the original's mtime")

	// Change the original, then ask again: the backup must still hold the
	// state after the first call.
	require.NoError(t, os.WriteFile(path, []byte("modified bytes"), 0o640))
	created, err = EnsureBackup(path)
	require.NoError(t, err)
	require.False(t, created)

	got, err = os.ReadFile(path + Suffix)
	require.NoError(t, err)
	require.Equal(t, first, got, "backup is never refreshed")
}

func TestEnsureBackup_MissingOriginal(t *testing.T) {
	_, err := EnsureBackup(filepath.Join(t.TempDir(), "absent.npb"))
	require.Error(t, err)
}

func TestNextVersionedName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mybank.npb", "mybank_v001.npb"},
		{"mybank_v007.npb", "mybank_v008.npb"},
		{"mybank_v099.npb", "mybank_v100.npb"},
		{"mybank_v999.npb", "mybank_v1000.npb"},
		{"mybank_v1000.npb", "mybank_v1001.npb"},
		{"my_v1.npb", "my_v1_v001.npb"}, // two digits is not the convention
		{"archive.tar.gz", "archive.tar_v001.gz"},
		{"bank", "bank_v001"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, NextVersionedName(tt.in))
		})
	}
}

func TestNextVersionedName_KeepsDirectory(t *testing.T) {
	in := filepath.Join("some", "dir", "mybank_v002.npb")
	require.Equal(t, filepath.Join("some", "dir", "mybank_v003.npb"), NextVersionedName(in))
}

func TestNextFreeVersionedName_SkipsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mybank.npb")
	require.NoError(t, os.WriteFile(path, []byte("bank"), 0o644))

	name, err := NextFreeVersionedName(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "mybank_v001.npb"), name)

	// Occupy v001 and v002; the scan must skip forward to v003.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mybank_v001.npb"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mybank_v002.npb"), []byte("x"), 0o644))

	name, err = NextFreeVersionedName(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "mybank_v003.npb"), name)
}
