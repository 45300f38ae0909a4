// Package testutil builds in-memory .npb bank fixtures for package tests.
package testutil

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Asset describes one opaque member of a fixture bank.
type Asset struct {
	Name    string
	Data    []byte
	Mode    int64
	ModTime time.Time
}

// DefaultAssets returns a realistic set of opaque members: a neural model
// capture, an impulse response, and the device state blob, with distinctive
// modes and mtimes so metadata-preservation tests have something to check.
func DefaultAssets() []Asset {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return []Asset{
		{Name: "amp_clean.nam", Data: bytes.Repeat([]byte{0xAB, 0x00, 0x42}, 512), Mode: 0o600, ModTime: base},
		{Name: "cab_412.ir", Data: bytes.Repeat([]byte{0x01, 0xFF}, 256), Mode: 0o644, ModTime: base.Add(time.Hour)},
		{Name: "state.bin", Data: []byte{0xDE, 0xAD, 0xBE, 0xEF}, Mode: 0o640, ModTime: base.Add(2 * time.Hour)},
	}
}

// DefaultConfig returns a realistic config.json payload: version marker,
// device-wide fields, and a two-preset array. "0.50" is deliberate, so tests
// can assert numeric formatting survives a round trip.
func DefaultConfig() []byte {
	return []byte(`{
    "configVersion": 3,
    "lcdBrightness": 7,
    "ledBrightness": 5,
    "lineoutVolume": 0.50,
    "lineoutPosition": 2,
    "midiChannelIndex": 0,
    "enableRotateBack": false,
    "presets": [
        {
            "name": "Clean",
            "potiGain": 0.25,
            "potiBass": 0.5,
            "potiMid": 0.5,
            "potiTreble": 0.6,
            "boostEnable": false,
            "gateEnable": true,
            "ledColor": 255
        },
        {
            "name": "Crunch",
            "potiGain": 0.75,
            "potiBass": 0.4,
            "potiMid": 0.55,
            "potiTreble": 0.7,
            "boostEnable": true,
            "gateEnable": false,
            "ledColor": 16711680
        }
    ]
}`)
}

// BuildBank assembles an in-memory gzip+tar bank with the given config
// payload in the middle of the asset list, the way device exports interleave
// members. A nil config omits the config.json member entirely.
func BuildBank(t *testing.T, cfg []byte, assets ...Asset) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	write := func(name string, data []byte, mode int64, mtime time.Time) {
		t.Helper()
		hdr := &tar.Header{
			Name:     "./" + name,
			Typeflag: tar.TypeReg,
			Size:     int64(len(data)),
			Mode:     mode,
			ModTime:  mtime,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("failed to write tar header for %s: %v", name, err)
		}
		if _, err := tw.Write(data); err != nil {
			t.Fatalf("failed to write tar data for %s: %v", name, err)
		}
	}

	half := len(assets) / 2
	for _, a := range assets[:half] {
		write(a.Name, a.Data, a.Mode, a.ModTime)
	}
	if cfg != nil {
		write("config.json", cfg, 0o644, time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC))
	}
	for _, a := range assets[half:] {
		write(a.Name, a.Data, a.Mode, a.ModTime)
	}

	if err := tw.Close(); err != nil {
		t.Fatalf("failed to close tar writer: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("failed to close gzip writer: %v", err)
	}
	return buf.Bytes()
}

// DefaultBank builds a bank from DefaultConfig and DefaultAssets.
func DefaultBank(t *testing.T) []byte {
	t.Helper()
	return BuildBank(t, DefaultConfig(), DefaultAssets()...)
}

// WriteBankFile writes bank bytes into dir under name and returns the path.
func WriteBankFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write bank file %s: %v", path, err)
	}
	return path
}
