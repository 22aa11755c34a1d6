package provision

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcssh/internal/errors"
	exectest "gcssh/internal/exec/testing"
)

func sampleCatalog() []Instance {
	return []Instance{
		{
			Name:    "worker-1",
			ZoneURL: "zones/us-central1-a",
			NetworkInterfaces: []NetworkInterface{
				{AccessConfigs: []AccessConfig{{NatIP: "34.1.2.3"}}},
			},
		},
		{
			Name:    "internal-only",
			ZoneURL: "zones/us-central1-b",
			NetworkInterfaces: []NetworkInterface{
				{AccessConfigs: []AccessConfig{{}}},
			},
		},
	}
}

func TestDisplayLine(t *testing.T) {
	catalog := sampleCatalog()

	assert.Equal(t, "worker-1 (zone: us-central1-a) - IP: 34.1.2.3",
		DisplayLine(&catalog[0]))
	assert.Equal(t, "internal-only (zone: us-central1-b) - no external IP",
		DisplayLine(&catalog[1]))
}

func TestSelectInstanceReturnsChoice(t *testing.T) {
	prompter := &fakePrompter{index: 1, ok: true}
	svc := newTestService(t, exectest.NewFakeRunner(), prompter)

	chosen, err := svc.SelectInstance(sampleCatalog())
	require.NoError(t, err)
	assert.Equal(t, "internal-only", chosen.Name)
}

func TestSelectInstancePreservesCatalogOrder(t *testing.T) {
	prompter := &fakePrompter{index: 0, ok: true}
	svc := newTestService(t, exectest.NewFakeRunner(), prompter)

	_, err := svc.SelectInstance(sampleCatalog())
	require.NoError(t, err)

	require.Len(t, prompter.seenLines, 2)
	assert.Contains(t, prompter.seenLines[0], "worker-1")
	assert.Contains(t, prompter.seenLines[1], "internal-only")
}

func TestSelectInstanceCancelled(t *testing.T) {
	prompter := &fakePrompter{ok: false}
	svc := newTestService(t, exectest.NewFakeRunner(), prompter)

	_, err := svc.SelectInstance(sampleCatalog())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrSelectionAborted))
}

func TestSelectInstancePrompterError(t *testing.T) {
	prompter := &fakePrompter{err: fmt.Errorf("tty unavailable")}
	svc := newTestService(t, exectest.NewFakeRunner(), prompter)

	_, err := svc.SelectInstance(sampleCatalog())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrSelectionAborted))
}

func TestSelectInstanceRangeChecksIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"index equals length", 2},
		{"index far out of range", 99},
		{"negative index", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter := &fakePrompter{index: tt.index, ok: true}
			svc := newTestService(t, exectest.NewFakeRunner(), prompter)

			_, err := svc.SelectInstance(sampleCatalog())
			require.Error(t, err, "out-of-range index must never reach catalog lookup")
			assert.True(t, errors.IsCode(err, errors.ErrSelectionAborted))
		})
	}
}

func TestSelectInstanceReturnsDeepCopy(t *testing.T) {
	prompter := &fakePrompter{index: 0, ok: true}
	svc := newTestService(t, exectest.NewFakeRunner(), prompter)

	catalog := sampleCatalog()
	chosen, err := svc.SelectInstance(catalog)
	require.NoError(t, err)

	chosen.NetworkInterfaces[0].AccessConfigs[0].NatIP = "0.0.0.0"
	ip, _ := catalog[0].ExternalIP()
	assert.Equal(t, "34.1.2.3", ip, "selection must not alias into the catalog")
}
