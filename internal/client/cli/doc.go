// Package cli provides the interactive StoryKeeper command-line client.
//
// It wires configuration, local storage, API services, and an interactive REPL
// that supports online/offline operation. Typical flow: prompt for credentials,
// start a background connectivity watcher, and execute user commands.
//
// Key features:
//   - Register / Login / Logout
//   - Browse, search and share geotagged stories
//   - Favorites kept locally
//   - Offline submission queue drained automatically when connectivity returns
//   - Push notification subscription management
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
