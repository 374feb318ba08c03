package prune

import (
	"errors"
	"fmt"
)

// ErrMissingCanonicalDeployment is returned when the project metadata was
// fetched successfully but names no live deployment.
var ErrMissingCanonicalDeployment = errors.New("unable to fetch production deployment ID")

// FetchError is a single failed attempt to fetch a deployment page.
// It is always retried.
type FetchError struct {
	Page int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch deployments page %d: %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// PaginationError is returned when every attempt to fetch a page failed.
type PaginationError struct {
	Page     int
	Attempts int
	Err      error
}

func (e *PaginationError) Error() string {
	return fmt.Sprintf("failed to list deployments on page %d after %d attempts: %v", e.Page, e.Attempts, e.Err)
}

func (e *PaginationError) Unwrap() error {
	return e.Err
}
