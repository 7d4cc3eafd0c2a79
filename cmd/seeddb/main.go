// Command seeddb fills a proompt database with sample data.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/dikkadev/proompt-dbtools/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, cli.NewSeedCmd())
	stop()
	os.Exit(code)
}
