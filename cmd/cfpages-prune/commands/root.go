// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing
// and flag binding. Command execution is delegated to handler functions in the
// handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the cfpages-prune CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cfpages-prune",
		Short:         "Delete all Cloudflare Pages deployments except the live one",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Prune())
	cmd.AddCommand(Version())

	return cmd
}
