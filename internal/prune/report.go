package prune

// Deployment outcomes, also used as metric label values.
const (
	OutcomeDeleted = "deleted"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
	OutcomePlanned = "planned"
)

// Failure is a deployment that could not be deleted.
type Failure struct {
	ID  string
	Err error
}

// Report summarizes a run. Slices keep the order deployments were processed in.
type Report struct {
	ProjectName string
	CanonicalID string
	DryRun      bool
	Listed      int

	Deleted []string
	Skipped []string
	Failed  []Failure
	// Planned holds the deployments a dry run would have deleted.
	Planned []string
}

// Attempted returns how many deletions were issued.
func (r *Report) Attempted() int {
	return len(r.Deleted) + len(r.Failed)
}
