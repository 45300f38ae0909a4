package archive_test

import (
	"archive/tar"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dimehead/npbkit/bank/archive"
	"github.com/dimehead/npbkit/bank/config"
	"github.com/dimehead/npbkit/internal/testutil"
)

func TestOpen_FindsConfigAndAssets(t *testing.T) {
	assets := testutil.DefaultAssets()
	a, err := archive.Open(testutil.BuildBank(t, testutil.DefaultConfig(), assets...))
	require.NoError(t, err)

	require.Equal(t, testutil.DefaultConfig(), a.ConfigBytes())
	require.Len(t, a.Members(), len(assets)+1)

	got := a.Assets()
	require.Len(t, got, len(assets))
	for i, want := range assets {
		require.Equal(t, "./"+want.Name, got[i].Header.Name, "asset order must match the container")
		require.Equal(t, want.Data, got[i].Data)
	}
}

func TestOpen_Errors(t *testing.T) {
	t.Run("missing config member", func(t *testing.T) {
		_, err := archive.Open(testutil.BuildBank(t, nil, testutil.DefaultAssets()...))
		require.ErrorIs(t, err, archive.ErrConfigMissing)
		require.ErrorIs(t, err, archive.ErrFormat)
	})

	t.Run("not gzip", func(t *testing.T) {
		_, err := archive.Open([]byte("definitely not a bank"))
		require.ErrorIs(t, err, archive.ErrFormat)
	})

	t.Run("truncated", func(t *testing.T) {
		data := testutil.DefaultBank(t)
		_, err := archive.Open(data[:len(data)/2])
		require.ErrorIs(t, err, archive.ErrFormat)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := archive.Open(nil)
		require.ErrorIs(t, err, archive.ErrFormat)
	})
}

// The core round-trip property: rebuilding with a re-encoded config yields a
// container whose opaque assets are byte-identical, in original order, with
// their metadata intact. Only the config member's bytes may differ.
func TestRebuild_RoundTripPreservesAssets(t *testing.T) {
	original, err := archive.Open(testutil.DefaultBank(t))
	require.NoError(t, err)

	doc, err := config.Decode(original.ConfigBytes())
	require.NoError(t, err)
	rebuilt, err := original.Rebuild(config.Encode(doc))
	require.NoError(t, err)

	reopened, err := archive.Open(rebuilt)
	require.NoError(t, err)

	wantMembers := original.Members()
	gotMembers := reopened.Members()
	require.Len(t, gotMembers, len(wantMembers))

	for i := range wantMembers {
		want, got := wantMembers[i], gotMembers[i]
		require.Equal(t, want.Header.Name, got.Header.Name, "member order must be preserved")
		if want.IsConfig() {
			continue
		}
		require.Equal(t, want.Data, got.Data, "asset %s must be byte-identical", want.Header.Name)
		require.Equal(t, want.Header.Mode, got.Header.Mode, "asset %s mode", want.Header.Name)
		require.True(t, want.Header.ModTime.Equal(got.Header.ModTime), "asset %s mtime", want.Header.Name)
	}
}

func TestRebuild_ReplacesOnlyConfig(t *testing.T) {
	a, err := archive.Open(testutil.DefaultBank(t))
	require.NoError(t, err)

	replacement := []byte(`{"configVersion": 3, "presets": []}`)
	rebuilt, err := a.Rebuild(replacement)
	require.NoError(t, err)

	reopened, err := archive.Open(rebuilt)
	require.NoError(t, err)
	require.Equal(t, replacement, reopened.ConfigBytes())

	// Config keeps its position in the member list, not moved to the end.
	var wantIdx, gotIdx int
	for i, m := range a.Members() {
		if m.IsConfig() {
			wantIdx = i
		}
	}
	for i, m := range reopened.Members() {
		if m.IsConfig() {
			gotIdx = i
		}
	}
	require.Equal(t, wantIdx, gotIdx)
}

func TestRebuild_ConfigKeepsModeUpdatesMtime(t *testing.T) {
	a, err := archive.Open(testutil.DefaultBank(t))
	require.NoError(t, err)

	var before archive.Member
	for _, m := range a.Members() {
		if m.IsConfig() {
			before = m
		}
	}

	rebuilt, err := a.Rebuild([]byte(`{"presets": []}`))
	require.NoError(t, err)
	reopened, err := archive.Open(rebuilt)
	require.NoError(t, err)

	for _, m := range reopened.Members() {
		if !m.IsConfig() {
			continue
		}
		require.Equal(t, before.Header.Mode, m.Header.Mode)
		require.True(t, m.Header.ModTime.After(before.Header.ModTime), "config mtime should be refreshed")
	}
}

func TestMember_IsConfig(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"./config.json", true},
		// Some exports store the member without the "./" root.
		{"config.json", true},
		{"/config.json", true},
		{"./state.bin", false},
		{"./nested/config.json", false},
	}
	for _, tt := range tests {
		m := archive.Member{Header: &tar.Header{Name: tt.name}}
		require.Equal(t, tt.want, m.IsConfig(), "name %q", tt.name)
	}
}
