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
	Issue(ctx context.Context) error
	Verify(ctx context.Context) error
	List(ctx context.Context) error
	Health(ctx context.Context) error
	Gas(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the CertChain CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cc> %s > ", statusFn()))
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
			printlnFn("Available commands: (i)ssue, (v)erify, (l)ist, health, gas, exit")

		case "i", "issue":
			_ = a.Issue(ctx)

		case "v", "verify":
			_ = a.Verify(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "health":
			_ = a.Health(ctx)

		case "gas":
			_ = a.Gas(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
