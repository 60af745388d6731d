// @focus: #sys { term }
// Package terminal provides the raw-mode terminal driver used by the editor.
//
// Features:
//   - Raw mode lifecycle with guaranteed restore (Init/Fini pairing)
//   - Queued ANSI output flushed once per refresh via Execute
//   - Synchronous stdin decoding of keys and escape sequences
//   - Alternate tcell-backed driver sharing the same Terminal contract
//   - Best-effort terminal restoration on panic
//
// The ANSI driver bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
