package archive

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ConfigName is the fixed name of the config document member, stored at the
// archive root (usually as "./config.json").
const ConfigName = "config.json"

var (
	// ErrFormat indicates the container is not a valid gzip-compressed tar
	// stream, or is truncated.
	ErrFormat = errors.New("archive: invalid bank container")

	// ErrConfigMissing indicates a well-formed container without a
	// config.json member. It wraps ErrFormat.
	ErrConfigMissing = fmt.Errorf("%w: no %s member", ErrFormat, ConfigName)
)

// Member is one entry of the container: its tar header, kept verbatim for
// the rebuild, and its payload bytes (nil for directories and specials).
type Member struct {
	Header *tar.Header
	Data   []byte
}

// IsConfig reports whether the member is the config document.
func (m Member) IsConfig() bool {
	return normalizeName(m.Header.Name) == ConfigName
}

// Archive is a fully decoded bank container: every member in original order
// plus the position of the config document.
type Archive struct {
	members   []Member
	configIdx int
}

// Open decompresses and reads a bank container. It fails with ErrFormat on
// bad gzip or tar framing and with ErrConfigMissing when no member matches
// the config document name.
func Open(data []byte) (*Archive, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	defer gz.Close()

	a := &Archive{configIdx: -1}
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		var payload []byte
		if hdr.Typeflag == tar.TypeReg {
			if payload, err = io.ReadAll(tr); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrFormat, err)
			}
		}
		m := Member{Header: hdr, Data: payload}
		if a.configIdx < 0 && m.IsConfig() {
			a.configIdx = len(a.members)
		}
		a.members = append(a.members, m)
	}
	if a.configIdx < 0 {
		return nil, ErrConfigMissing
	}
	return a, nil
}

// Members returns all members in original order.
func (a *Archive) Members() []Member { return a.members }

// Assets returns the members other than the config document, in original
// order.
func (a *Archive) Assets() []Member {
	out := make([]Member, 0, len(a.members)-1)
	for i, m := range a.members {
		if i != a.configIdx {
			out = append(out, m)
		}
	}
	return out
}

// ConfigBytes returns the config document payload.
func (a *Archive) ConfigBytes() []byte { return a.members[a.configIdx].Data }

// Rebuild produces a new compressed container with the config document
// payload replaced by newConfig. Every other member keeps its header and
// payload verbatim and all members keep their original relative order. The
// config member keeps its name and mode; its size and mtime are updated.
func (a *Archive) Rebuild(newConfig []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for i, m := range a.members {
		hdr, data := m.Header, m.Data
		if i == a.configIdx {
			h := *m.Header
			h.Size = int64(len(newConfig))
			h.ModTime = time.Now()
			hdr, data = &h, newConfig
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return nil, fmt.Errorf("archive: rebuild %s: %w", hdr.Name, err)
		}
		if len(data) > 0 {
			if _, err := tw.Write(data); err != nil {
				return nil, fmt.Errorf("archive: rebuild %s: %w", hdr.Name, err)
			}
		}
	}
	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("archive: rebuild: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("archive: rebuild: %w", err)
	}
	return buf.Bytes(), nil
}

func normalizeName(name string) string {
	for {
		switch {
		case strings.HasPrefix(name, "./"):
			name = name[2:]
		case strings.HasPrefix(name, "/"):
			name = name[1:]
		default:
			return name
		}
	}
}
