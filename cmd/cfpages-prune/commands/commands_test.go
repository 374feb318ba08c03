package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "cfpages-prune", cmd.Use)

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["prune"])
	assert.True(t, names["version"])
}

func TestPrune_Flags(t *testing.T) {
	cmd := Prune()

	for _, name := range []string{
		"api-token", "account-id", "project-name", "delete-aliased-deployments",
		"dry-run", "config", "env-file", "metrics-file", "verbose",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag --%s", name)
	}

	assert.Equal(t, "false", cmd.Flags().Lookup("delete-aliased-deployments").DefValue)
	assert.Equal(t, ".env", cmd.Flags().Lookup("env-file").DefValue)
	assert.Equal(t, "c", cmd.Flags().Lookup("config").Shorthand)
}

func TestSetVersionInfo(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() {
		version, commit, date = origVersion, origCommit, origDate
	}()

	SetVersionInfo("1.2.3", "abc123", "2024-01-01")

	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2024-01-01", date)
	assert.Equal(t, "cfpages-prune/1.2.3", userAgent())
}

func TestVersion_Output(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() {
		version, commit, date = origVersion, origCommit, origDate
	}()
	SetVersionInfo("test-version", "test-commit", "test-date")

	var out bytes.Buffer
	cmd := Version()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "cfpages-prune test-version")
	assert.Contains(t, out.String(), "commit: test-commit")
	assert.Contains(t, out.String(), "built:  test-date")
}
