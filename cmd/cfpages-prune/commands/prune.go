package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/cfpages-prune/cmd/cfpages-prune/handlers"
)

// Prune returns the prune command.
//
// The prune command deletes every deployment of a Pages project except the
// live production deployment.
func Prune() *cobra.Command {
	var opts handlers.PruneOptions

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete all deployments except the live production deployment",
		Long: `Prune removes old Cloudflare Pages deployments.

The live production deployment is looked up first and is never deleted.
All other deployments are listed page by page and deleted one at a time.
A deployment that fails to delete is reported and skipped.

Deployments that are still reachable through an alias (for example
staging.<project>.pages.dev) are only deleted with
--delete-aliased-deployments.

Credentials and identifiers can be given as flags or through the
environment (CF_API_TOKEN, CF_ACCOUNT_ID, CF_PROJECT_NAME), a .env file,
or a YAML file passed with --config.

Examples:
  # Delete everything but the live deployment
  cfpages-prune prune --account-id abc123 --project-name my-site

  # Include aliased preview deployments
  cfpages-prune prune --delete-aliased-deployments

  # Show what would be deleted
  cfpages-prune prune --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Flags.DeleteAliasedSet = cmd.Flags().Changed("delete-aliased-deployments")
			opts.UserAgent = userAgent()
			return handlers.Prune(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Flags.APIToken, "api-token", "", "Cloudflare API token (env: CF_API_TOKEN)")
	f.StringVar(&opts.Flags.AccountID, "account-id", "", "Cloudflare account ID (env: CF_ACCOUNT_ID)")
	f.StringVar(&opts.Flags.ProjectName, "project-name", "", "Cloudflare Pages project name (env: CF_PROJECT_NAME)")
	f.BoolVar(&opts.Flags.DeleteAliasedDeployments, "delete-aliased-deployments", false,
		"Also delete aliased deployments, e.g. staging.example.pages.dev (env: CF_DELETE_ALIASED_DEPLOYMENTS)")
	f.BoolVar(&opts.Flags.DryRun, "dry-run", false, "List deployments that would be deleted without deleting them")
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a YAML configuration file")
	f.StringVar(&opts.EnvFile, "env-file", ".env", "Path to a .env file to load before reading the environment")
	f.StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus metrics for this run to the given file")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
