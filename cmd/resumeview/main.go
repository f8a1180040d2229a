package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"resumeview/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "resumeview: %v\n", err)
		stop()
		os.Exit(1)
	}
}
