package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcssh/internal/exec"
)

func TestFakeRunnerReplaysResponsesInOrder(t *testing.T) {
	f := NewFakeRunner().
		EnqueueSuccess("first").
		EnqueueFailure(1, "second failed")

	r1, err := f.Run("gcloud", "compute", "instances", "list")
	require.NoError(t, err)
	assert.Equal(t, "first", string(r1.Stdout))

	r2, err := f.Run("gcloud", "compute", "ssh", "vm-1")
	require.NoError(t, err)
	assert.Equal(t, 1, r2.ExitCode)
	assert.Equal(t, "second failed", r2.StderrText())
}

func TestFakeRunnerRecordsCalls(t *testing.T) {
	f := NewFakeRunner().EnqueueSuccess("")

	_, err := f.Run("gcloud", "compute", "ssh-keys", "create")
	require.NoError(t, err)

	assert.Equal(t, 1, f.CallCount())
	assert.Equal(t, "gcloud", f.LastCall().Program)
	assert.Equal(t, "gcloud compute ssh-keys create", f.LastCall().Line())
}

func TestFakeRunnerFailsOnUnexpectedCall(t *testing.T) {
	f := NewFakeRunner()

	result, err := f.Run("gcloud", "version")
	assert.Error(t, err)
	assert.Equal(t, -1, result.ExitCode)
	assert.Equal(t, 1, f.CallCount(), "unexpected calls are still recorded")
}

var _ exec.Runner = (*FakeRunner)(nil)
