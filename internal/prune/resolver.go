package prune

import (
	"context"
	"fmt"
	"strings"
)

// ResolveCanonicalDeployment returns the ID of the deployment currently
// serving production traffic. It is not retried.
func (p *Pruner) ResolveCanonicalDeployment(ctx context.Context) (string, error) {
	project, err := p.api.GetProject(ctx, p.cfg.AccountID, p.cfg.ProjectName)
	if err != nil {
		return "", fmt.Errorf("resolve live deployment: %w", err)
	}

	if project == nil || project.CanonicalDeployment == nil {
		return "", fmt.Errorf("project %s: %w", p.cfg.ProjectName, ErrMissingCanonicalDeployment)
	}
	id := strings.TrimSpace(project.CanonicalDeployment.ID)
	if id == "" {
		return "", fmt.Errorf("project %s: %w", p.cfg.ProjectName, ErrMissingCanonicalDeployment)
	}

	p.log.Info("found live production deployment to exclude from deletion", "deploymentID", id)
	return id, nil
}
