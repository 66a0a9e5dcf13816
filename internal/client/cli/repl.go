package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Create(ctx context.Context) error
	Open(ctx context.Context) error
	Forget(ctx context.Context) error
	Lookup(ctx context.Context) error
	Exists(ctx context.Context) error
	Sweep(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Whisper Note CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//   - help      — show available commands
//   - create    — compose a new message (optionally passphrase-locked)
//   - open      — fetch a message by id, unlocking it when needed
//   - forget    — drop a cached unlocked plaintext
//   - lookup    — get a generated message for a name
//   - exists    — check whether a name belongs to a known person
//   - sweep     — trigger the server-side expired-message cleanup
//   - exit|quit — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	printlnFn("Whisper Note CLI (type 'help' for commands)")
	for {
		printlnFn("wn> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: create, open, forget, lookup, exists, sweep, exit")

		case "create":
			_ = a.Create(ctx)

		case "open":
			_ = a.Open(ctx)

		case "forget":
			_ = a.Forget(ctx)

		case "lookup":
			_ = a.Lookup(ctx)

		case "exists":
			_ = a.Exists(ctx)

		case "sweep":
			_ = a.Sweep(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
