package prune

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/cfpages-prune/internal/platform/cloudflare"
	"github.com/imamik/cfpages-prune/internal/util/retry"
)

// ListAllDeploymentIDs fetches pages of PageSize deployments, starting at
// page 1, until a page comes back empty. IDs are returned in listing order.
//
// Only an empty page ends pagination; a short page does not. Every page
// fetch is retried with exponential backoff. When all attempts for a page
// fail a *PaginationError is returned and nothing accumulated so far is
// kept.
func (p *Pruner) ListAllDeploymentIDs(ctx context.Context) ([]string, error) {
	var ids []string

	for page := 1; ; page++ {
		deployments, err := p.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}

		for _, d := range deployments {
			ids = append(ids, d.ID)
		}

		if len(deployments) == 0 {
			return ids, nil
		}

		p.log.V(1).Info("listed deployment page", "page", page, "count", len(deployments))
		if err := pauseFor(ctx, p.pause); err != nil {
			return nil, fmt.Errorf("list deployments: %w", err)
		}
	}
}

func (p *Pruner) fetchPage(ctx context.Context, page int) ([]cloudflare.Deployment, error) {
	var deployments []cloudflare.Deployment

	err := retry.WithExponentialBackoff(ctx, func() error {
		result, err := p.api.ListDeployments(ctx, p.cfg.AccountID, p.cfg.ProjectName, page, PageSize)
		if err != nil {
			return &FetchError{Page: page, Err: err}
		}
		deployments = result
		return nil
	},
		retry.WithMaxAttempts(p.maxAttempts),
		retry.WithInitialDelay(p.initialDelay),
		retry.WithOnRetry(func(attempt int, err error) {
			p.recorder.ListRetry()
			p.log.Info("failed to list deployments, retrying",
				"page", page, "attempt", attempt, "maxAttempts", p.maxAttempts, "error", err.Error())
		}),
	)
	if err == nil {
		return deployments, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return nil, fmt.Errorf("list deployments page %d: %w", page, err)
	}

	pageErr := &PaginationError{Page: page, Attempts: p.maxAttempts, Err: err}
	var exhausted *retry.ExhaustedError
	if errors.As(err, &exhausted) {
		pageErr.Attempts = exhausted.Attempts
		pageErr.Err = exhausted.Err
	}
	p.log.Error(pageErr.Err, "failed to list deployments", "page", page, "attempts", pageErr.Attempts)
	return nil, pageErr
}
