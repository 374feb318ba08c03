package prune

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr/testr"

	"github.com/imamik/cfpages-prune/internal/config"
	"github.com/imamik/cfpages-prune/internal/platform/cloudflare"
)

type deleteCall struct {
	ID    string
	Force bool
}

// fakeAPI is an in-memory DeploymentAPI.
type fakeAPI struct {
	mu sync.Mutex

	project    *cloudflare.Project
	projectErr error

	// pages[i] is returned for page i+1; pages past the end are empty.
	pages [][]cloudflare.Deployment
	// listFailures[page] is how many calls for that page fail before one succeeds.
	listFailures map[int]int
	listErr      error
	listCalls    []int

	deleteErrs map[string]error
	deletes    []deleteCall
}

func (f *fakeAPI) GetProject(_ context.Context, _, _ string) (*cloudflare.Project, error) {
	if f.projectErr != nil {
		return nil, f.projectErr
	}
	return f.project, nil
}

func (f *fakeAPI) ListDeployments(_ context.Context, _, _ string, page, perPage int) ([]cloudflare.Deployment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = append(f.listCalls, page)

	if perPage != PageSize {
		return nil, errors.New("unexpected page size")
	}
	if f.listFailures[page] > 0 {
		f.listFailures[page]--
		err := f.listErr
		if err == nil {
			err = errors.New("connection reset by peer")
		}
		return nil, err
	}
	if page-1 < len(f.pages) {
		return f.pages[page-1], nil
	}
	return []cloudflare.Deployment{}, nil
}

func (f *fakeAPI) DeleteDeployment(_ context.Context, _, _, deploymentID string, force bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, deleteCall{ID: deploymentID, Force: force})
	return f.deleteErrs[deploymentID]
}

func (f *fakeAPI) deletedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.deletes))
	for _, d := range f.deletes {
		ids = append(ids, d.ID)
	}
	return ids
}

type countingRecorder struct {
	outcomes map[string]int
	retries  int
}

func (r *countingRecorder) DeploymentOutcome(outcome string) {
	if r.outcomes == nil {
		r.outcomes = map[string]int{}
	}
	r.outcomes[outcome]++
}

func (r *countingRecorder) ListRetry() { r.retries++ }

func deployments(ids ...string) []cloudflare.Deployment {
	out := make([]cloudflare.Deployment, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloudflare.Deployment{ID: id})
	}
	return out
}

func liveProject(id string) *cloudflare.Project {
	return &cloudflare.Project{Name: "my-site", CanonicalDeployment: &cloudflare.Deployment{ID: id}}
}

func testConfig() config.RunConfig {
	return config.RunConfig{APIToken: "token", AccountID: "acc-1", ProjectName: "my-site"}
}

func newTestPruner(t *testing.T, api DeploymentAPI, cfg config.RunConfig, opts ...Option) *Pruner {
	t.Helper()
	opts = append([]Option{
		WithLogger(testr.New(t)),
		WithRetry(DefaultMaxAttempts, time.Millisecond),
		WithPause(0),
	}, opts...)
	return New(api, cfg, opts...)
}
