// Package backup implements the safety policy around destructive saves.
//
// # Overview
//
// Two independent mechanisms protect a bank file:
//
//   - A one-time backup: before the first in-place overwrite, the original
//     bytes are copied to a ".bak" sibling. The backup is created at most
//     once per file and never refreshed, so it always reflects the state
//     before this tool ever modified the bank. At-most-once is tracked by
//     the existence of the backup file itself, not in memory, so it holds
//     across process restarts.
//
//   - Versioned saves: edits written to a new sibling file with a "_vNNN"
//     suffix before the extension (mybank.npb → mybank_v001.npb →
//     mybank_v002.npb), leaving the original untouched. Name derivation is
//     pure; NextFreeVersionedName adds the collision policy of skipping
//     forward past names already on disk.
package backup
