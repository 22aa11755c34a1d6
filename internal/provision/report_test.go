package provision

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcssh/internal/errors"
	exectest "gcssh/internal/exec/testing"
)

func TestReportConnection(t *testing.T) {
	svc := newTestService(t, exectest.NewFakeRunner(), &fakePrompter{})

	catalog := sampleCatalog()
	info, err := svc.ReportConnection(&catalog[0])
	require.NoError(t, err)

	assert.Equal(t, "worker-1", info.Instance)
	assert.Equal(t, "us-central1-a", info.Zone)
	assert.Equal(t, "34.1.2.3", info.IP)
	assert.Equal(t, "tester", info.User)
	assert.Equal(t, "ssh tester@34.1.2.3", info.Command)
	assert.Empty(t, info.Alias)
}

func TestReportConnectionNoExternalIP(t *testing.T) {
	svc := newTestService(t, exectest.NewFakeRunner(), &fakePrompter{})

	catalog := sampleCatalog()
	_, err := svc.ReportConnection(&catalog[1])
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNoExternalIP))
}

func TestReportConnectionUsernameFailure(t *testing.T) {
	svc := newTestService(t, exectest.NewFakeRunner(), &fakePrompter{})
	svc.Username = func() (string, error) { return "", os.ErrNotExist }

	catalog := sampleCatalog()
	_, err := svc.ReportConnection(&catalog[0])
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrIO))
}

func TestReportConnectionFindsConfigAlias(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config")
	cfg := "Host bastion\n" +
		"  HostName 10.9.9.9\n" +
		"\n" +
		"Host worker\n" +
		"  HostName 34.1.2.3\n" +
		"  User ops\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	svc := newTestService(t, exectest.NewFakeRunner(), &fakePrompter{})
	svc.SSHConfigPath = cfgPath

	catalog := sampleCatalog()
	info, err := svc.ReportConnection(&catalog[0])
	require.NoError(t, err)
	assert.Equal(t, "worker", info.Alias)
}

func TestReportConnectionIgnoresWildcardHosts(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config")
	cfg := "Host *.internal\n" +
		"  HostName 34.1.2.3\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	svc := newTestService(t, exectest.NewFakeRunner(), &fakePrompter{})
	svc.SSHConfigPath = cfgPath

	catalog := sampleCatalog()
	info, err := svc.ReportConnection(&catalog[0])
	require.NoError(t, err)
	assert.Empty(t, info.Alias, "wildcard patterns are not usable aliases")
}

func TestReportConnectionMissingConfigIsFine(t *testing.T) {
	svc := newTestService(t, exectest.NewFakeRunner(), &fakePrompter{})
	svc.SSHConfigPath = filepath.Join(t.TempDir(), "does-not-exist")

	catalog := sampleCatalog()
	info, err := svc.ReportConnection(&catalog[0])
	require.NoError(t, err)
	assert.Empty(t, info.Alias)
}
