package provision

import (
	"gcssh/internal/errors"
)

// ListInstances fetches the instance catalog through the external CLI.
// One invocation, no retry: transient provider errors surface to the
// operator rather than being masked, since silent retries could hide quota
// or auth problems.
func (s *Service) ListInstances() ([]Instance, error) {
	result, err := s.Gcloud.ListInstances()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrListing,
			"Couldn't list VM instances", "")
	}
	if !result.Success() {
		return nil, errors.WithDetail(errors.ErrListing,
			"Couldn't list VM instances",
			result.StderrText())
	}

	instances, err := DecodeInstances(result.Stdout)
	if err != nil {
		return nil, err
	}

	if len(instances) == 0 {
		return nil, errors.New(errors.ErrNoInstances,
			"No VM instances found in the active project",
			"Create an instance or switch projects: gcloud config set project <id>")
	}

	s.log.Debug("decoded %d instances", len(instances))
	return instances, nil
}
