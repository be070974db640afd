package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Toggle(ctx context.Context) error
	Delete(ctx context.Context) error
}

const helpTextLoggedOut = `Commands:
  register   create an account
  login      authenticate
  help       show this message
  exit       leave the program`

const helpTextLoggedIn = `Commands:
  list       show the checklist
  add        add an item
  toggle     flip an item's done flag
  delete     remove an item
  logout     drop the session
  help       show this message
  exit       leave the program`

// runREPL starts a simple read–eval–print loop. It reads a line, parses the
// first token as the command, and dispatches to methods on a. Unknown
// commands are reported back to the user. The loop exits on scanner EOF or
// when the user types "exit" or "quit".
func (a *App) runREPL(ctx context.Context, scanner *bufio.Scanner) {
	replLoop(ctx, a, scanner)
}

func replLoop(ctx context.Context, a execIface, scanner *bufio.Scanner) {

	for {
		fmt.Print(prompt(a))

		if !scanner.Scan() {
			return
		}

		cmd := strings.ToLower(strings.TrimSpace(strings.SplitN(scanner.Text(), " ", 2)[0]))
		if cmd == "" {
			continue
		}
		if cmd == "exit" || cmd == "quit" {
			return
		}

		if err := dispatch(ctx, a, cmd); err != nil {
			log.Println(err.Error())
		}
	}
}

func prompt(a execIface) string {
	if a.isLoggedIn() {
		return "grocerylist> "
	}
	return "grocerylist (not logged in)> "
}

func dispatch(ctx context.Context, a execIface, cmd string) error {

	if !a.isLoggedIn() {
		switch cmd {
		case "help":
			printlnFn(helpTextLoggedOut)
			return nil
		case "register":
			return a.Register(ctx)
		case "login":
			return a.Login(ctx)
		default:
			printlnFn("Unknown command. Type 'help' for the list of commands.")
			return nil
		}
	}

	switch cmd {
	case "help":
		printlnFn(helpTextLoggedIn)
		return nil
	case "list":
		return a.List(ctx)
	case "add":
		return a.Add(ctx)
	case "toggle":
		return a.Toggle(ctx)
	case "delete":
		return a.Delete(ctx)
	case "logout":
		return a.Logout(ctx)
	default:
		printlnFn("Unknown command. Type 'help' for the list of commands.")
		return nil
	}
}
