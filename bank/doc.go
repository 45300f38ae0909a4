// Package bank orchestrates editing sessions on .npb bank files.
//
// # Overview
//
// A Session owns one opened bank: the decoded config document, the full
// member list of the originating archive (opaque assets retained unchanged
// for the eventual rebuild), and a dirty flag that flips on any successful
// mutation and clears on a successful save.
//
// Two save paths exist. Overwrite replaces the bank in place, but only after
// a one-time ".bak" backup of the pre-tool state exists and only via a
// temp-file-then-rename install, so a crash can never leave a truncated
// bank. SaveNewVersion writes to the next free "_vNNN" sibling and never
// touches the original; the new file becomes the session's current path.
//
// Every operation fails fast: an edit that does not resolve leaves the
// document and the dirty flag untouched, and no save mutates the on-disk
// original before the rebuilt archive fully exists in memory.
//
// # Concurrency
//
// A Session is NOT thread-safe. It assumes a single writer: one goroutine
// per session and at most one process editing a given bank file at a time.
// No file locking is attempted.
package bank
