// Package rawterm provides minimal raw-mode control of the process terminal.
//
// Features:
//   - Raw, unbuffered input: no line buffering, no echo, no special-character
//     interpretation
//   - Non-blocking single-byte reads
//   - Current window size queries (never cached)
//   - Optional resize notification
//   - Exactly-once, idempotent restoration of the original terminal mode
//
// Everything above the byte level is out of scope: escape sequence parsing,
// key decoding, colors, and screen buffering belong to the layers built on
// top of this package. Output is left untouched, so callers keep writing
// ordinary newline-terminated lines to stdout.
//
// A Session owns the terminal mode for its lifetime. The terminal is a
// process-global resource with no rollback, so at most one Session may be
// live per terminal at a time; overlapping sessions corrupt the saved mode
// and restoration behavior is undefined. This contract is the caller's to
// uphold, the package does not enforce it.
//
// Target environments: Linux, macOS, BSDs, Windows 10+ consoles.
package rawterm
