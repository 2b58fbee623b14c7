// Package main is the entry point for the glissue CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/runoshun/glissue/internal/app"
	"github.com/runoshun/glissue/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

// exitInterrupted is the conventional status for termination by SIGINT.
const exitInterrupted = 130

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container := app.New()
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	return exitCode(rootCmd.ExecuteContext(ctx), os.Stderr)
}

// exitCode reports err on w and maps it to the process exit status.
func exitCode(err error, w io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		// Leave the interrupted prompt on its own line.
		_, _ = fmt.Fprintln(w)
		return exitInterrupted
	default:
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}
}
