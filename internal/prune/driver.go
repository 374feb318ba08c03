package prune

import (
	"context"
)

// DeleteAllExcept deletes every deployment in ids except canonicalID, in
// order. Deployments are force-deleted when the run config asks for
// aliased deployments to be removed.
//
// A failed deletion is logged, recorded in the report and skipped; the
// loop continues with the next ID. Deletions are not retried. The only
// error returned is context cancellation, together with the partial report.
func (p *Pruner) DeleteAllExcept(ctx context.Context, ids []string, canonicalID string) (*Report, error) {
	report := &Report{
		ProjectName: p.cfg.ProjectName,
		CanonicalID: canonicalID,
		DryRun:      p.cfg.DryRun,
		Listed:      len(ids),
	}
	force := p.cfg.DeleteAliasedDeployments

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if id == canonicalID {
			p.log.Info("skipping production deployment", "deploymentID", id)
			report.Skipped = append(report.Skipped, id)
			p.recorder.DeploymentOutcome(OutcomeSkipped)
			continue
		}

		if p.cfg.DryRun {
			p.log.Info("would delete deployment", "deploymentID", id, "project", p.cfg.ProjectName, "force", force)
			report.Planned = append(report.Planned, id)
			p.recorder.DeploymentOutcome(OutcomePlanned)
			continue
		}

		if err := p.api.DeleteDeployment(ctx, p.cfg.AccountID, p.cfg.ProjectName, id, force); err != nil {
			p.log.Error(err, "failed to delete deployment", "deploymentID", id)
			report.Failed = append(report.Failed, Failure{ID: id, Err: err})
			p.recorder.DeploymentOutcome(OutcomeFailed)
			continue
		}

		p.log.Info("deleted deployment", "deploymentID", id, "project", p.cfg.ProjectName)
		report.Deleted = append(report.Deleted, id)
		p.recorder.DeploymentOutcome(OutcomeDeleted)

		if err := pauseFor(ctx, p.pause); err != nil {
			return report, err
		}
	}

	return report, nil
}
