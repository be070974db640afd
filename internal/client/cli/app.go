// Package cli implements the interactive terminal client for the grocery
// list service: a small REPL that registers, authenticates, and edits the
// checklist over the REST API.
package cli

import (
	"bufio"
	"context"
	"os"

	"grocerylist/internal/client"
)

type App struct {
	api      *client.Client
	userName string
	reader   *bufio.Reader
}

func NewApp(serverAddr string) *App {
	return &App{
		api:    client.New(serverAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	a.runREPL(ctx, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.api.IsAuthenticated()
}

// Logout discards the session token.
func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.userName = ""
	return nil
}
