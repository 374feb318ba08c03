package prune

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/cfpages-prune/internal/config"
	"github.com/imamik/cfpages-prune/internal/platform/cloudflare"
)

// PageSize is the number of deployments requested per listing call.
const PageSize = 10

// Defaults for the pagination retry policy and the courtesy pause.
const (
	DefaultMaxAttempts  = 5
	DefaultInitialDelay = 1 * time.Second
	DefaultPause        = 500 * time.Millisecond
)

// DeploymentAPI is the subset of the Cloudflare client used by a run.
type DeploymentAPI interface {
	GetProject(ctx context.Context, accountID, projectName string) (*cloudflare.Project, error)
	ListDeployments(ctx context.Context, accountID, projectName string, page, perPage int) ([]cloudflare.Deployment, error)
	DeleteDeployment(ctx context.Context, accountID, projectName, deploymentID string, force bool) error
}

// Recorder receives run counters. *metrics.Recorder satisfies it.
type Recorder interface {
	DeploymentOutcome(outcome string)
	ListRetry()
}

type noopRecorder struct{}

func (noopRecorder) DeploymentOutcome(string) {}
func (noopRecorder) ListRetry()               {}

// Pruner runs the prune workflow for one project.
type Pruner struct {
	api      DeploymentAPI
	cfg      config.RunConfig
	log      logr.Logger
	recorder Recorder

	maxAttempts  int
	initialDelay time.Duration
	pause        time.Duration
}

// Option configures a Pruner.
type Option func(*Pruner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logr.Logger) Option {
	return func(p *Pruner) {
		p.log = l
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(p *Pruner) {
		if r != nil {
			p.recorder = r
		}
	}
}

// WithRetry sets the attempts and first backoff delay for page fetches.
func WithRetry(maxAttempts int, initialDelay time.Duration) Option {
	return func(p *Pruner) {
		if maxAttempts > 0 {
			p.maxAttempts = maxAttempts
		}
		if initialDelay >= 0 {
			p.initialDelay = initialDelay
		}
	}
}

// WithPause sets the pause between pages and after each deletion.
// Zero disables pausing.
func WithPause(d time.Duration) Option {
	return func(p *Pruner) {
		if d >= 0 {
			p.pause = d
		}
	}
}

// New creates a Pruner. cfg is copied and never modified.
func New(api DeploymentAPI, cfg config.RunConfig, opts ...Option) *Pruner {
	p := &Pruner{
		api:          api,
		cfg:          cfg,
		log:          logr.Discard(),
		recorder:     noopRecorder{},
		maxAttempts:  DefaultMaxAttempts,
		initialDelay: DefaultInitialDelay,
		pause:        DefaultPause,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run resolves the live deployment, lists all deployments and deletes
// every one except the live deployment.
//
// Resolution and pagination failures abort the run before anything is
// deleted. Individual deletion failures are recorded in the report and do
// not produce an error.
func (p *Pruner) Run(ctx context.Context) (*Report, error) {
	canonicalID, err := p.ResolveCanonicalDeployment(ctx)
	if err != nil {
		return nil, err
	}

	p.log.Info("listing all deployments, this may take a while", "project", p.cfg.ProjectName)
	ids, err := p.ListAllDeploymentIDs(ctx)
	if err != nil {
		return nil, err
	}
	p.log.Info("listed deployments", "count", len(ids))

	report, err := p.DeleteAllExcept(ctx, ids, canonicalID)
	if err != nil {
		return report, fmt.Errorf("delete deployments: %w", err)
	}
	return report, nil
}

// pauseFor waits for d unless ctx is done first.
func pauseFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
