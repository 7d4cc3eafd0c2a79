// Command cleardb deletes all data from a proompt database and rebuilds its search indexes.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/dikkadev/proompt-dbtools/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, cli.NewClearCmd())
	stop()
	os.Exit(code)
}
