// Package archive reads and rebuilds the .npb bank container.
//
// # Overview
//
// A bank is a gzip-compressed POSIX tar stream. Members use relative paths
// rooted at "./". Exactly one member, config.json at the archive root, is
// the editable config document; every other member (neural model captures,
// impulse responses, device state) is an opaque asset that must pass through
// a rebuild bit-identical and in its original relative order.
//
// Open and Rebuild are pure in-memory transforms. All file I/O belongs to
// the caller, which keeps the original file untouchable until a rebuild has
// fully succeeded and makes round-trip testing trivial.
package archive
