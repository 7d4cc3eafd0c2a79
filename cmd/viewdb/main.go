// Command viewdb pretty prints the contents of a proompt database.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/dikkadev/proompt-dbtools/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, cli.NewViewCmd())
	stop()
	os.Exit(code)
}
