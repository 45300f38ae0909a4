// Package pointer resolves slash-delimited paths against a config document.
//
// # Overview
//
// Pointers follow the RFC 6901 JSON Pointer notation: "/presets/0/name"
// addresses the "name" field of the first preset. A leading "#" fragment
// marker is tolerated and ignored, so shell users can paste
// "#/presets/0/name" unchanged. The empty pointer ("" or "#") addresses the
// document root.
//
// Tokens are unescaped after splitting: "~1" decodes to "/" and "~0" to "~".
//
// Set never creates paths: the final token must reference an existing object
// key or in-range array index. Incoming values arrive as text and are coerced
// in a fixed order — boolean, null, integer, float, then literal string — so
// "true" becomes a boolean and "1" an integer, never the strings "true" or
// "1".
package pointer
