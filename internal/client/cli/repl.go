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
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Add(ctx context.Context) error
	Favorites(ctx context.Context) error
	Favorite(ctx context.Context, id string) error
	Unfavorite(ctx context.Context, id string) error
	Pending(ctx context.Context) error
	Sync(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Unsubscribe(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the StoryKeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands while not logged in: help, register, login, exit.
// Commands while logged in: list, search, add, favorites, fav, unfav,
// pending, sync, subscribe, unsubscribe, logout, exit.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sk> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search <text>, add, favorites, fav <id>, unfav <id>, pending, sync, subscribe, unsubscribe, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "add":
			_ = a.Add(ctx)

		case "favorites":
			_ = a.Favorites(ctx)

		case "fav":
			if len(args) == 0 {
				printlnFn("Usage: fav <story id>")
				continue
			}
			_ = a.Favorite(ctx, args[0])

		case "unfav":
			if len(args) == 0 {
				printlnFn("Usage: unfav <story id>")
				continue
			}
			_ = a.Unfavorite(ctx, args[0])

		case "pending":
			_ = a.Pending(ctx)

		case "sync":
			_ = a.Sync(ctx)

		case "subscribe":
			_ = a.Subscribe(ctx)

		case "unsubscribe":
			_ = a.Unsubscribe(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
