// Command contentbuild generates the website's JSON data from CSV content.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ns-engineering/contentbuild/internal/adapters/driving/cli"
	"github.com/ns-engineering/contentbuild/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()

	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
