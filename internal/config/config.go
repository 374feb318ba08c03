package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables consulted when a flag is not set.
const (
	EnvAPIToken                 = "CF_API_TOKEN"
	EnvAccountID                = "CF_ACCOUNT_ID"
	EnvProjectName              = "CF_PROJECT_NAME"
	EnvDeleteAliasedDeployments = "CF_DELETE_ALIASED_DEPLOYMENTS"
	EnvAPIBaseURL               = "CF_API_BASE_URL"
)

// RunConfig is the immutable input of a prune run.
type RunConfig struct {
	APIToken    string
	AccountID   string
	ProjectName string

	// DeleteAliasedDeployments forces deletion of deployments that are
	// still reachable through an alias such as staging.<project>.pages.dev.
	DeleteAliasedDeployments bool

	// DryRun lists what would be deleted without deleting anything.
	DryRun bool

	// APIBaseURL overrides the Cloudflare API root. Empty means default.
	APIBaseURL string
}

// Flags holds the values given on the command line.
// DeleteAliasedSet records whether the bool flag was passed explicitly,
// so an unset flag can fall back to the environment.
type Flags struct {
	APIToken                 string
	AccountID                string
	ProjectName              string
	DeleteAliasedDeployments bool
	DeleteAliasedSet         bool
	DryRun                   bool
}

// ConfigurationError reports a missing or invalid setting.
type ConfigurationError struct {
	Field  string
	Flag   string
	EnvVar string
	Reason string
}

func (e *ConfigurationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "is required"
	}
	switch {
	case e.Flag != "" && e.EnvVar != "":
		return fmt.Sprintf("%s %s (set --%s or %s)", e.Field, reason, e.Flag, e.EnvVar)
	case e.EnvVar != "":
		return fmt.Sprintf("%s %s (set %s)", e.Field, reason, e.EnvVar)
	default:
		return fmt.Sprintf("%s %s", e.Field, reason)
	}
}

// Resolve merges flags, environment and file into a validated RunConfig.
// file may be nil.
func Resolve(flags Flags, file *File) (RunConfig, error) {
	if file == nil {
		file = &File{}
	}

	cfg := RunConfig{
		APIToken:    firstNonEmpty(flags.APIToken, os.Getenv(EnvAPIToken), file.APIToken),
		AccountID:   firstNonEmpty(flags.AccountID, os.Getenv(EnvAccountID), file.AccountID),
		ProjectName: firstNonEmpty(flags.ProjectName, os.Getenv(EnvProjectName), file.ProjectName),
		APIBaseURL:  firstNonEmpty(os.Getenv(EnvAPIBaseURL), file.APIBaseURL),
		DryRun:      flags.DryRun,
	}

	switch {
	case flags.DeleteAliasedSet:
		cfg.DeleteAliasedDeployments = flags.DeleteAliasedDeployments
	case strings.TrimSpace(os.Getenv(EnvDeleteAliasedDeployments)) != "":
		v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(EnvDeleteAliasedDeployments)))
		if err != nil {
			return RunConfig{}, &ConfigurationError{
				Field:  "delete-aliased-deployments",
				EnvVar: EnvDeleteAliasedDeployments,
				Reason: fmt.Sprintf("must be a boolean, got %q", os.Getenv(EnvDeleteAliasedDeployments)),
			}
		}
		cfg.DeleteAliasedDeployments = v
	default:
		cfg.DeleteAliasedDeployments = file.DeleteAliasedDeployments
	}

	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// Validate checks that every required value is present.
func (c RunConfig) Validate() error {
	if c.APIToken == "" {
		return &ConfigurationError{Field: "API token", Flag: "api-token", EnvVar: EnvAPIToken}
	}
	if c.AccountID == "" {
		return &ConfigurationError{Field: "Account ID", Flag: "account-id", EnvVar: EnvAccountID}
	}
	if c.ProjectName == "" {
		return &ConfigurationError{Field: "Project name", Flag: "project-name", EnvVar: EnvProjectName}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
