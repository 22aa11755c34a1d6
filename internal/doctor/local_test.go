package doctor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcssh/internal/config"
	exectest "gcssh/internal/exec/testing"
	"gcssh/internal/gcloud"
	"gcssh/internal/logger"
	"gcssh/internal/provision"
)

func newTestKeyStore(t *testing.T, fake *exectest.FakeRunner) *provision.KeyStore {
	t.Helper()
	gc := gcloud.NewClient(fake, gcloud.WithLogger(logger.Noop()))
	return provision.NewKeyStoreAt(filepath.Join(t.TempDir(), ".ssh"), gc)
}

func TestKeyPairCheckMissingPairWarns(t *testing.T) {
	keys := newTestKeyStore(t, exectest.NewFakeRunner())

	result := (&KeyPairCheck{Keys: keys}).Run()
	assert.Equal(t, StatusWarn, result.Status)
	assert.True(t, result.Fixable)
}

func TestKeyPairCheckMalformedPublicKeyFails(t *testing.T) {
	keys := newTestKeyStore(t, exectest.NewFakeRunner())
	require.NoError(t, os.MkdirAll(keys.Dir, 0o700))
	require.NoError(t, os.WriteFile(keys.PrivateKeyPath(),
		[]byte("private\n"), 0o600))
	require.NoError(t, os.WriteFile(keys.PublicKeyPath(),
		[]byte("not an authorized-keys line\n"), 0o644))

	result := (&KeyPairCheck{Keys: keys}).Run()
	assert.Equal(t, StatusFail, result.Status)
}

func TestKeyPairCheckFixGeneratesPair(t *testing.T) {
	fake := exectest.NewFakeRunner().EnqueueSuccess("")
	keys := newTestKeyStore(t, fake)

	check := &KeyPairCheck{Keys: keys}
	require.NoError(t, check.Fix())
	assert.Equal(t, "gcloud compute ssh-keys create", fake.LastCall().Line())
}

func TestGcloudAuthCheck(t *testing.T) {
	tests := []struct {
		name     string
		stdout   string
		exitCode int
		stderr   string
		expected CheckStatus
	}{
		{"active account", "dev@example.com\n", 0, "", StatusPass},
		{"nobody logged in", "", 0, "", StatusFail},
		{"command failed", "", 1, "ERROR: unknown command\n", StatusFail},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fake := exectest.NewFakeRunner()
			if tc.exitCode == 0 {
				fake.EnqueueSuccess(tc.stdout)
			} else {
				fake.EnqueueFailure(tc.exitCode, tc.stderr)
			}
			gc := gcloud.NewClient(fake, gcloud.WithLogger(logger.Noop()))

			result := (&GcloudAuthCheck{Client: gc}).Run()
			assert.Equal(t, tc.expected, result.Status)
		})
	}
}

func TestConfigCheck(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		result := (&ConfigCheck{Path: path}).Run()
		assert.Equal(t, StatusPass, result.Status)
	})

	t.Run("invalid settings fail", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		cfg := config.Default()
		cfg.Layout.FrameWidth = 1
		require.NoError(t, config.Save(cfg, path))

		result := (&ConfigCheck{Path: path}).Run()
		assert.Equal(t, StatusFail, result.Status)
	})
}

func TestNewChecksCoversAllCategories(t *testing.T) {
	fake := exectest.NewFakeRunner()
	gc := gcloud.NewClient(fake, gcloud.WithLogger(logger.Noop()))
	keys := newTestKeyStore(t, fake)

	checks := NewChecks(gc, keys, filepath.Join(t.TempDir(), "config.yaml"))
	grouped := GroupByCategory(checks)

	assert.Contains(t, grouped, "GCLOUD")
	assert.Contains(t, grouped, "SSH")
	assert.Contains(t, grouped, "CONFIG")
}
