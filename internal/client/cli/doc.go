// Package cli provides the interactive spy cats command-line client.
//
// It wires configuration, the API client, the local call journal, the roster
// and the forms into a small REPL. The REPL is started with App.Run, which
// blocks until the user exits or input ends.
//
// Commands:
//   - (l)ist, retry          load the roster and print it
//   - add                    create a cat
//   - show <id>              fetch and print one cat
//   - edit <id>              change a cat's salary
//   - delete <id>            delete a cat after confirmation
//   - history [n], stats     inspect the call journal and latency stats
package cli
