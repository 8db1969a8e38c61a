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
	Home(ctx context.Context) error
	About(ctx context.Context) error
	Contact(ctx context.Context) error
	Products(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Wish(ctx context.Context, id string) error
	Unwish(ctx context.Context, id string) error
	Wishlist(ctx context.Context) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
	Feedback(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the AR Shopsy CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help               - show available commands
//	  - home | about | contact
//	  - products           - list the catalog
//	  - show <id>          - product detail with the 3D viewer
//	  - wish <id>          - add an item to the wishlist
//	  - unwish <id>        - remove an item from the wishlist
//	  - (w)ishlist         - list wishlist items and the total
//	  - feedback           - send feedback
//	  - exit | quit        - leave the program
//
//	Not signed in:
//	  - register           - create an account
//	  - login              - sign in
//
//	Signed in:
//	  - checkout           - pay for the wishlist items
//	  - orders             - list completed orders
//	  - logout             - sign out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("shop> %s > ", statusFn()))
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
			printlnFn("Pages: home, about, contact, products, show <id>, feedback")
			printlnFn("Wishlist: wish <id>, unwish <id>, (w)ishlist")
			if a.isLoggedIn() {
				printlnFn("Account: checkout, orders, logout, exit")
			} else {
				printlnFn("Account: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "home":
			_ = a.Home(ctx)

		case "about":
			_ = a.About(ctx)

		case "contact":
			_ = a.Contact(ctx)

		case "products":
			_ = a.Products(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "wish":
			if len(args) == 0 {
				printlnFn("Usage: wish <id>")
				continue
			}
			_ = a.Wish(ctx, args[0])

		case "unwish":
			if len(args) == 0 {
				printlnFn("Usage: unwish <id>")
				continue
			}
			_ = a.Unwish(ctx, args[0])

		case "w", "wishlist":
			_ = a.Wishlist(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "orders":
			_ = a.Orders(ctx)

		case "feedback":
			_ = a.Feedback(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
