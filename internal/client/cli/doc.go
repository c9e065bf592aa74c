// Package cli provides the interactive Bookshelf command-line client.
//
// It wires configuration, the Cognito identity adapter, the session
// manager, and the catalog API client into an interactive REPL. Typical
// flow: restore a previous session on startup, then execute user
// commands until exit.
//
// Key features:
//   - Sign-up with email verification and code resend
//   - Login / Logout backed by the identity provider
//   - Browse, add, edit and delete books
//   - Read and write reviews, ask for recommendations
//   - Manage reading lists and their books
//
// The REPL is started via App.Run(ctx), which blocks until the user
// exits. See App and runREPL for details.
package cli
