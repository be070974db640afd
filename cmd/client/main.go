package main

import (
	"context"
	"flag"

	"grocerylist/internal/client/cli"
)

func main() {

	serverAddr := flag.String("a", "http://localhost:4000", "server base URL")
	flag.Parse()

	app := cli.NewApp(*serverAddr)
	app.Run(context.Background())
}
