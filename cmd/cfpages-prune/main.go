// Package main is the entry point for the cfpages-prune CLI.
//
// cfpages-prune deletes every deployment of a Cloudflare Pages project
// except the one currently serving production traffic.
//
// For detailed usage information, run:
//
//	cfpages-prune --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/cfpages-prune/cmd/cfpages-prune/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Root().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
