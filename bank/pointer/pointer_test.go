package pointer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dimehead/npbkit/bank/config"
)

func testDoc(t *testing.T) config.Node {
	t.Helper()
	doc, err := config.Decode([]byte(`{
    "configVersion": 3,
    "lcdBrightness": 7,
    "a/b": {"c~d": "escaped"},
    "presets": [
        {"name": "Clean", "potiGain": 0.25},
        {"name": "Crunch", "potiGain": 0.75}
    ]
}`))
	require.NoError(t, err)
	return doc
}

func TestParse_Escapes(t *testing.T) {
	p, err := Parse("/a~1b/c~0d")
	require.NoError(t, err)
	require.Equal(t, []string{"a/b", "c~d"}, p.Tokens())

	got, err := Get(testDoc(t), p)
	require.NoError(t, err)
	require.Equal(t, config.String("escaped"), got)
}

func TestParse_Root(t *testing.T) {
	for _, text := range []string{"", "#"} {
		p, err := Parse(text)
		require.NoError(t, err, "text %q", text)
		require.True(t, p.IsRoot())

		doc := testDoc(t)
		got, err := Get(doc, p)
		require.NoError(t, err)
		require.Same(t, doc, got)
	}
}

func TestParse_FragmentMarker(t *testing.T) {
	p, err := Parse("#/presets/0/name")
	require.NoError(t, err)

	got, err := Get(testDoc(t), p)
	require.NoError(t, err)
	require.Equal(t, config.String("Clean"), got)
}

func TestParse_Syntax(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no leading slash", "presets/0"},
		{"fragment without slash", "#presets"},
		{"dangling tilde", "/a~"},
		{"bad escape", "/a~2b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestPointer_StringRoundTrip(t *testing.T) {
	for _, text := range []string{"", "/presets/0/name", "/a~1b/c~0d"} {
		p, err := Parse(text)
		require.NoError(t, err)
		require.Equal(t, text, p.String())
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		ptr  string
		want config.Node
	}{
		{"top-level scalar", "/lcdBrightness", config.Number("7")},
		{"array element field", "/presets/1/name", config.String("Crunch")},
		{"number formatting kept", "/presets/0/potiGain", config.Number("0.25")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.ptr)
			require.NoError(t, err)
			got, err := Get(testDoc(t), p)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGet_Errors(t *testing.T) {
	tests := []struct {
		name string
		ptr  string
		want error
	}{
		{"missing key", "/nope", ErrKeyNotFound},
		{"missing nested key", "/presets/0/nope", ErrKeyNotFound},
		{"index out of range", "/presets/99/name", ErrIndexOutOfRange},
		{"negative index", "/presets/-1", ErrKeyNotFound},
		{"non-integer array token", "/presets/first", ErrKeyNotFound},
		{"token on scalar", "/lcdBrightness/x", ErrNotContainer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDoc(t)
			before := config.Encode(doc)

			p, err := Parse(tt.ptr)
			require.NoError(t, err)
			_, err = Get(doc, p)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, ErrResolve, "subtype must wrap the resolve family")

			require.Equal(t, before, config.Encode(doc), "failed get must not mutate the document")
		})
	}
}

func TestCoerce_Precedence(t *testing.T) {
	tests := []struct {
		raw  string
		want config.Node
	}{
		{"true", config.Bool(true)},
		{"TRUE", config.Bool(true)},
		{"false", config.Bool(false)},
		{"null", config.Null{}},
		{"NULL", config.Null{}},
		{"1", config.Number("1")},
		{"-42", config.Number("-42")},
		{"1.5", config.Number("1.5")},
		{"0.50", config.Number("0.50")},
		{"2e3", config.Number("2e3")},
		{"hello", config.String("hello")},
		{"0", config.Number("0")},
		// Leading zeros skip the integer parse (octal confusion guard) and
		// land on the float path.
		{"007", config.Number("7")},
		{"1x", config.String("1x")},
		{"nan", config.String("nan")},
		{"inf", config.String("inf")},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.want, Coerce(tt.raw))
		})
	}
}

func TestSet_ThenGetIsIdempotent(t *testing.T) {
	tests := []struct {
		ptr string
		raw string
	}{
		{"/presets/0/name", "Lead Boost"},
		{"/presets/1/potiGain", "0.33"},
		{"/lcdBrightness", "9"},
		{"/configVersion", "null"},
	}
	for _, tt := range tests {
		t.Run(tt.ptr, func(t *testing.T) {
			doc := testDoc(t)
			p, err := Parse(tt.ptr)
			require.NoError(t, err)

			require.NoError(t, Set(doc, p, Coerce(tt.raw)))
			got, err := Get(doc, p)
			require.NoError(t, err)
			require.Equal(t, Coerce(tt.raw), got)
		})
	}
}

func TestSet_NeverCreates(t *testing.T) {
	tests := []struct {
		name string
		ptr  string
		want error
	}{
		{"new object key", "/brandNewKey", ErrKeyNotFound},
		{"new nested key", "/presets/0/brandNew", ErrKeyNotFound},
		{"array growth", "/presets/2", ErrIndexOutOfRange},
		{"scalar parent", "/lcdBrightness/x", ErrNotContainer},
		{"missing parent", "/nope/child", ErrKeyNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDoc(t)
			before := config.Encode(doc)

			p, err := Parse(tt.ptr)
			require.NoError(t, err)
			err = Set(doc, p, config.String("x"))
			require.ErrorIs(t, err, tt.want)

			require.Equal(t, before, config.Encode(doc), "failed set must not mutate the document")
		})
	}
}

func TestSet_RootRefused(t *testing.T) {
	doc := testDoc(t)
	err := Set(doc, Pointer{}, config.String("x"))
	require.ErrorIs(t, err, ErrResolve)
}

func TestSet_ArrayElementReplacement(t *testing.T) {
	doc := testDoc(t)
	p, err := Parse("/presets/1")
	require.NoError(t, err)

	require.NoError(t, Set(doc, p, config.Null{}))
	got, err := Get(doc, p)
	require.NoError(t, err)
	require.Equal(t, config.Null{}, got)

	presets, err := Get(doc, mustParse(t, "/presets"))
	require.NoError(t, err)
	require.Equal(t, 2, presets.(*config.Array).Len(), "replacement must not change length")
}

func mustParse(t *testing.T, text string) Pointer {
	t.Helper()
	p, err := Parse(text)
	require.NoError(t, err)
	return p
}
