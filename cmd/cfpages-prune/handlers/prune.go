// Package handlers implements the command logic behind the CLI commands.
package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/go-logr/logr"

	"github.com/imamik/cfpages-prune/internal/config"
	"github.com/imamik/cfpages-prune/internal/logging"
	"github.com/imamik/cfpages-prune/internal/metrics"
	"github.com/imamik/cfpages-prune/internal/platform/cloudflare"
	"github.com/imamik/cfpages-prune/internal/prune"
	"github.com/imamik/cfpages-prune/internal/ui"
)

// PruneOptions carries everything the prune command collected from flags.
type PruneOptions struct {
	Flags       config.Flags
	ConfigPath  string
	EnvFile     string
	MetricsFile string
	Verbose     bool
	UserAgent   string
}

// Factory function variables - can be replaced in tests.
var (
	// newDeploymentAPI creates the Cloudflare client used by the run.
	newDeploymentAPI = func(cfg config.RunConfig, tun *config.Tunables, userAgent string, rec *metrics.Recorder) prune.DeploymentAPI {
		opts := []cloudflare.Option{
			cloudflare.WithHTTPClient(&http.Client{Timeout: tun.HTTPTimeout}),
			cloudflare.WithObserver(rec.ObserveAPIRequest),
		}
		if cfg.APIBaseURL != "" {
			opts = append(opts, cloudflare.WithBaseURL(cfg.APIBaseURL))
		}
		if userAgent != "" {
			opts = append(opts, cloudflare.WithUserAgent(userAgent))
		}
		return cloudflare.NewClient(cfg.APIToken, opts...)
	}

	// newLogger creates the run logger.
	newLogger = func(w io.Writer, verbose bool) logr.Logger {
		v := 0
		if verbose {
			v = 1
		}
		return logging.New(w, v)
	}

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Prune handles the prune command.
//
// It resolves the run configuration, deletes every deployment of the
// project except the live one and prints a summary. Configuration,
// resolution and listing failures are returned; individual deletion
// failures only show up in the summary.
func Prune(ctx context.Context, opts PruneOptions) error {
	if err := config.LoadEnvFile(opts.EnvFile); err != nil {
		return err
	}

	file, err := config.LoadFile(opts.ConfigPath)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(opts.Flags, file)
	if err != nil {
		return err
	}
	tun := config.LoadTunables()

	log := newLogger(stderr, opts.Verbose)
	rec := metrics.New()

	if cfg.DryRun {
		log.Info("dry run: no deployments will be deleted")
	}

	p := prune.New(newDeploymentAPI(cfg, tun, opts.UserAgent, rec), cfg,
		prune.WithLogger(log),
		prune.WithRecorder(rec),
		prune.WithRetry(tun.RetryMaxAttempts, tun.RetryInitialDelay),
		prune.WithPause(tun.RequestPause),
	)

	report, runErr := p.Run(ctx)

	if opts.MetricsFile != "" {
		if err := rec.WriteTextfile(opts.MetricsFile); err != nil {
			log.Error(err, "failed to write metrics file", "path", opts.MetricsFile)
		}
	}

	if report != nil {
		_, _ = fmt.Fprint(stdout, ui.RenderSummary(report, ui.IsInteractiveTTY(stdout)))
	}
	if runErr != nil {
		return fmt.Errorf("prune %s: %w", cfg.ProjectName, runErr)
	}
	return nil
}
