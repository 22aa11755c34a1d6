package provision

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcssh/internal/errors"
	exectest "gcssh/internal/exec/testing"
)

func TestBuildRemoteCommandOrdering(t *testing.T) {
	cmd := BuildRemoteCommand("ssh-ed25519 AAAAC3Nza test@host")

	steps := []string{
		"mkdir -p ~/.ssh",
		"chmod 700 ~/.ssh",
		">> ~/.ssh/authorized_keys",
		"chmod 600 ~/.ssh/authorized_keys",
	}
	last := -1
	for _, step := range steps {
		pos := strings.Index(cmd, step)
		require.GreaterOrEqual(t, pos, 0, "missing step %q", step)
		assert.Greater(t, pos, last, "%q out of order", step)
		last = pos
	}
}

func TestBuildRemoteCommandQuotesKey(t *testing.T) {
	cmd := BuildRemoteCommand("ssh-ed25519 AAAAC3Nza test@host\n")

	assert.Contains(t, cmd, "echo 'ssh-ed25519 AAAAC3Nza test@host'",
		"key must be single-quoted and trimmed")
	assert.NotContains(t, cmd, "\n")
}

func TestDeployKeySendsRemoteCommand(t *testing.T) {
	fake := exectest.NewFakeRunner().EnqueueSuccess("")
	svc := newTestService(t, fake, &fakePrompter{})
	require.NoError(t, os.MkdirAll(svc.Keys.Dir, 0o700))
	writeKeyPair(t, svc.Keys.Dir)

	inst := &Instance{Name: "worker-1", ZoneURL: "zones/us-central1-a"}
	require.NoError(t, svc.DeployKey(inst))

	require.Equal(t, 1, fake.CallCount())
	call := fake.LastCall()
	assert.Equal(t, "gcloud", call.Program)
	require.Len(t, call.Args, 7)
	assert.Equal(t, []string{"compute", "ssh", "worker-1", "--zone", "us-central1-a", "--command"},
		call.Args[:6])
	assert.Contains(t, call.Args[6], "ssh-ed25519")
}

func TestDeployKeyTwiceAppendsTwice(t *testing.T) {
	fake := exectest.NewFakeRunner().EnqueueSuccess("").EnqueueSuccess("")
	svc := newTestService(t, fake, &fakePrompter{})
	require.NoError(t, os.MkdirAll(svc.Keys.Dir, 0o700))
	writeKeyPair(t, svc.Keys.Dir)

	inst := &Instance{Name: "worker-1", ZoneURL: "zones/us-central1-a"}
	require.NoError(t, svc.DeployKey(inst))
	require.NoError(t, svc.DeployKey(inst))

	// Each run issues its own append; the remote file may legitimately end
	// up with the key twice.
	assert.Equal(t, 2, fake.CallCount())
}

func TestDeployKeyCommandFailure(t *testing.T) {
	fake := exectest.NewFakeRunner().
		EnqueueFailure(255, "Permission denied (publickey).\n")
	svc := newTestService(t, fake, &fakePrompter{})
	require.NoError(t, os.MkdirAll(svc.Keys.Dir, 0o700))
	writeKeyPair(t, svc.Keys.Dir)

	inst := &Instance{Name: "worker-1", ZoneURL: "zones/us-central1-a"}
	err := svc.DeployKey(inst)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrDeploy))
	assert.Equal(t, "Permission denied (publickey).\n", errors.Detail(err))
}

func TestDeployKeyMissingPublicKey(t *testing.T) {
	fake := exectest.NewFakeRunner()
	svc := newTestService(t, fake, &fakePrompter{})

	inst := &Instance{Name: "worker-1", ZoneURL: "zones/us-central1-a"}
	err := svc.DeployKey(inst)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrIO))
	assert.Zero(t, fake.CallCount(), "no remote call without a readable key")
}
