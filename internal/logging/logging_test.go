package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := New(&buf, 0)

	log.Info("deleted deployment", "deploymentID", "abc")
	log.V(1).Info("hidden at verbosity 0")
	log.Error(errors.New("boom"), "failed to delete deployment", "deploymentID", "def")

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg"="deleted deployment"`)
	assert.Contains(t, lines[0], `"deploymentID"="abc"`)
	assert.Contains(t, lines[1], `"error"="boom"`)
	assert.NotContains(t, out, "hidden")
}

func TestNew_Verbose(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := New(&buf, 1).WithName("prune")

	log.V(1).Info("listed page", "page", 2)

	assert.True(t, strings.HasPrefix(buf.String(), "prune: "))
	assert.Contains(t, buf.String(), `"page"=2`)
}
