package provision

import (
	"fmt"

	"gcssh/internal/errors"
)

// DisplayLine renders one catalog entry for the selection prompt:
// name, zone, and the external IP or an absence marker.
func DisplayLine(inst *Instance) string {
	ipDisplay := "no external IP"
	if ip, ok := inst.ExternalIP(); ok {
		ipDisplay = "IP: " + ip
	}
	return fmt.Sprintf("%s (zone: %s) - %s", inst.Name, inst.Zone(), ipDisplay)
}

// SelectInstance shows the catalog in its original order and returns a deep
// copy of the operator's choice. The prompter's index is range-checked
// before any catalog access.
func (s *Service) SelectInstance(catalog []Instance) (*Instance, error) {
	lines := make([]string, len(catalog))
	for i := range catalog {
		lines[i] = DisplayLine(&catalog[i])
	}

	index, ok, err := s.Prompter.Pick(lines)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSelectionAborted,
			"Couldn't show the VM selection menu", "")
	}
	if !ok {
		return nil, errors.New(errors.ErrSelectionAborted,
			"VM selection cancelled", "")
	}
	if index < 0 || index >= len(catalog) {
		return nil, errors.New(errors.ErrSelectionAborted,
			fmt.Sprintf("Selection index %d out of range (0..%d)", index, len(catalog)-1),
			"")
	}

	chosen := catalog[index].Clone()
	return &chosen, nil
}
