// Package config implements the codec for the bank's config.json member.
//
// # Overview
//
// The config document is a generic JSON tree: objects, arrays, and scalars.
// The device firmware is free to add fields this tool has never seen, so the
// decoded representation must keep every field, keep object keys in their
// original order, and re-emit numeric literals exactly as they appeared in
// the source. A map-based parse cannot do any of that, which is why the tree
// is a closed set of concrete node types built from a token-level walk.
//
// # Node Types
//
//   - Object: ordered key→node mapping (keys unique)
//   - Array: ordered node sequence
//   - String, Number, Bool, Null: scalar leaves
//
// Number keeps the source literal verbatim ("1.50" stays "1.50"), so a
// decode/encode round trip preserves numeric formatting. Whitespace is the
// one thing that does not survive: Encode always renders with four-space
// indentation, so round trips are semantically lossless but not guaranteed
// byte-identical.
//
// # Usage
//
//	doc, err := config.Decode(raw)
//	if err != nil {
//	    return err
//	}
//	out := config.Encode(doc)
package config
