// Package cli provides the interactive CertChain command-line client.
//
// It wires configuration, the local fallback store, the remote API client,
// the simulated chain service, and an interactive REPL. Typical flow: open
// the local database, seed it on first use, start a background connectivity
// watcher, and execute user commands.
//
// Key commands:
//   - issue  — create a certificate (remote or local fallback)
//   - verify — look a certificate up by its identifier
//   - list   — show all certificates, newest first
//   - health — probe backend liveness
//   - gas    — show simulated gas figures
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
