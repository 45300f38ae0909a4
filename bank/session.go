package bank

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dimehead/npbkit/bank/archive"
	"github.com/dimehead/npbkit/bank/backup"
	"github.com/dimehead/npbkit/bank/config"
	"github.com/dimehead/npbkit/bank/pointer"
)

// PresetsKey is the config field holding the ordered preset array. Array
// position is the device recall index.
const PresetsKey = "presets"

// ErrNoPresets indicates the config document carries no presets array.
var ErrNoPresets = errors.New("bank: config has no presets array")

// Session is an exclusive editing session on one bank file. See the package
// documentation for the ownership and concurrency contract.
type Session struct {
	path  string
	arch  *archive.Archive
	doc   config.Node
	raw   []byte // verbatim replacement bytes from ReplaceConfig, nil otherwise
	dirty bool
}

// Load reads and opens the bank at path.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank %s: %w", path, err)
	}
	arch, err := archive.Open(data)
	if err != nil {
		return nil, err
	}
	doc, err := config.Decode(arch.ConfigBytes())
	if err != nil {
		return nil, err
	}
	return &Session{path: path, arch: arch, doc: doc}, nil
}

// Path returns the file the session currently points at. SaveNewVersion
// re-points the session at the file it wrote.
func (s *Session) Path() string { return s.path }

// Dirty reports whether the session holds unsaved changes.
func (s *Session) Dirty() bool { return s.dirty }

// Document returns the decoded config document. The session retains
// ownership; callers mutating it directly own the dirty flag consequences.
func (s *Session) Document() config.Node { return s.doc }

// ConfigJSON renders the current config document payload: the verbatim
// replacement bytes if ReplaceConfig is pending, otherwise the encoded tree.
func (s *Session) ConfigJSON() []byte {
	if s.raw != nil {
		return s.raw
	}
	return config.Encode(s.doc)
}

// ConfigVersion returns the top-level configVersion marker literal, if
// present. Unknown versions are preserved, never rejected.
func (s *Session) ConfigVersion() (string, bool) {
	root, ok := s.doc.(*config.Object)
	if !ok {
		return "", false
	}
	v, ok := root.Get("configVersion")
	if !ok {
		return "", false
	}
	if n, ok := v.(config.Number); ok {
		return n.Literal(), true
	}
	return "", false
}

// Assets returns the archive members other than the config document, in
// original order.
func (s *Session) Assets() []archive.Member { return s.arch.Assets() }

// Get resolves a pointer expression against the config document.
func (s *Session) Get(ptrText string) (config.Node, error) {
	ptr, err := pointer.Parse(ptrText)
	if err != nil {
		return nil, err
	}
	return pointer.Get(s.doc, ptr)
}

// Set coerces rawValue and assigns it at the pointer expression. The dirty
// flag flips only when the assignment succeeds; a failed resolve leaves the
// document untouched.
func (s *Session) Set(ptrText, rawValue string) error {
	ptr, err := pointer.Parse(ptrText)
	if err != nil {
		return err
	}
	if err := pointer.Set(s.doc, ptr, pointer.Coerce(rawValue)); err != nil {
		return err
	}
	s.raw = nil
	s.dirty = true
	return nil
}

// ReplaceConfig swaps in a whole replacement document. The bytes are
// validated and decoded so the in-memory model stays consistent, but the
// next save embeds them verbatim, preserving the caller's formatting. Any
// later field edit drops the verbatim bytes in favor of the edited tree.
func (s *Session) ReplaceConfig(raw []byte) error {
	doc, err := config.Decode(raw)
	if err != nil {
		return err
	}
	s.doc = doc
	s.raw = append([]byte(nil), raw...)
	s.dirty = true
	return nil
}

// Presets returns the ordered preset array.
func (s *Session) Presets() (*config.Array, error) {
	root, ok := s.doc.(*config.Object)
	if !ok {
		return nil, ErrNoPresets
	}
	v, ok := root.Get(PresetsKey)
	if !ok {
		return nil, ErrNoPresets
	}
	arr, ok := v.(*config.Array)
	if !ok {
		return nil, ErrNoPresets
	}
	return arr, nil
}

// PresetName returns the "name" field of the i-th preset, or "" when the
// preset has no string name.
func (s *Session) PresetName(i int) (string, error) {
	presets, err := s.Presets()
	if err != nil {
		return "", err
	}
	if i < 0 || i >= presets.Len() {
		return "", fmt.Errorf("%w: index %d in array of length %d", pointer.ErrIndexOutOfRange, i, presets.Len())
	}
	obj, ok := presets.At(i).(*config.Object)
	if !ok {
		return "", nil
	}
	if v, ok := obj.Get("name"); ok {
		if str, ok := v.(config.String); ok {
			return str.Value(), nil
		}
	}
	return "", nil
}

// MovePreset relocates the preset at from to recall position to, shifting
// the presets in between. All other fields of every preset are untouched.
func (s *Session) MovePreset(from, to int) error {
	presets, err := s.Presets()
	if err != nil {
		return err
	}
	if !presets.Move(from, to) {
		return fmt.Errorf("%w: move %d -> %d in array of length %d", pointer.ErrIndexOutOfRange, from, to, presets.Len())
	}
	if from != to {
		s.raw = nil
		s.dirty = true
	}
	return nil
}

// Overwrite rebuilds the archive in memory, ensures the one-time backup of
// the original exists, and atomically replaces the file at the current path.
// The original is never touched before the rebuild has fully succeeded.
func (s *Session) Overwrite() error {
	out, err := s.rebuild()
	if err != nil {
		return err
	}
	if _, err := backup.EnsureBackup(s.path); err != nil {
		return err
	}
	if err := writeFileAtomic(s.path, out); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// SaveNewVersion rebuilds the archive and writes it to the next free
// version-suffixed sibling, leaving the original untouched (no backup is
// required). The new file becomes the session's current path. It returns
// the path written.
func (s *Session) SaveNewVersion() (string, error) {
	out, err := s.rebuild()
	if err != nil {
		return "", err
	}
	dest, err := backup.NextFreeVersionedName(s.path)
	if err != nil {
		return "", err
	}
	if err := writeFileAtomic(dest, out); err != nil {
		return "", err
	}
	s.path = dest
	s.dirty = false
	return dest, nil
}

func (s *Session) rebuild() ([]byte, error) {
	return s.arch.Rebuild(s.ConfigJSON())
}

// writeFileAtomic writes data to a temp file in the destination directory
// and renames it over path, so a crash mid-write can never leave a
// truncated file at path. An existing file's mode is preserved.
func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
