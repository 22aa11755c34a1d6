package provision

import "fmt"

// Stage identifies one step of the provisioning workflow.
type Stage int

const (
	StageEnsureKey Stage = iota
	StageListInstances
	StageSelectInstance
	StageDeployKey
	StageReportConnection
)

// String returns the operator-facing stage name.
func (s Stage) String() string {
	switch s {
	case StageEnsureKey:
		return "ensure SSH key"
	case StageListInstances:
		return "list VM instances"
	case StageSelectInstance:
		return "select VM"
	case StageDeployKey:
		return "deploy SSH key"
	case StageReportConnection:
		return "report connection"
	default:
		return "unknown"
	}
}

// StageError wraps a stage failure with the stage that produced it. The
// underlying error keeps its taxonomy code.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %q failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Observer receives progress callbacks as the workflow advances. It exists
// so the presentation layer can render spinners and catalogs without the
// workflow knowing anything about terminals.
type Observer interface {
	StageStarted(stage Stage)
	StageCompleted(stage Stage, note string)
	CatalogListed(instances []Instance)
	KeyDeployed(inst *Instance)
}

// NopObserver ignores all callbacks.
type NopObserver struct{}

func (NopObserver) StageStarted(Stage)           {}
func (NopObserver) StageCompleted(Stage, string) {}
func (NopObserver) CatalogListed([]Instance)     {}
func (NopObserver) KeyDeployed(*Instance)        {}

// Run executes the five stages in order, halting on the first failure.
// There is no rollback: key generation and directory creation are safe,
// idempotent side effects that are fine to leave in place. Every failure is
// returned as a *StageError wrapping the stage's specific error.
func (s *Service) Run(obs Observer) (*ConnectionInfo, error) {
	if obs == nil {
		obs = NopObserver{}
	}

	obs.StageStarted(StageEnsureKey)
	if err := s.Keys.EnsureKeyPair(); err != nil {
		return nil, &StageError{Stage: StageEnsureKey, Err: err}
	}
	obs.StageCompleted(StageEnsureKey, s.Keys.Fingerprint())

	obs.StageStarted(StageListInstances)
	catalog, err := s.ListInstances()
	if err != nil {
		return nil, &StageError{Stage: StageListInstances, Err: err}
	}
	obs.StageCompleted(StageListInstances, "")
	obs.CatalogListed(catalog)

	obs.StageStarted(StageSelectInstance)
	chosen, err := s.SelectInstance(catalog)
	if err != nil {
		return nil, &StageError{Stage: StageSelectInstance, Err: err}
	}
	obs.StageCompleted(StageSelectInstance, chosen.Name)

	obs.StageStarted(StageDeployKey)
	if err := s.DeployKey(chosen); err != nil {
		return nil, &StageError{Stage: StageDeployKey, Err: err}
	}
	obs.StageCompleted(StageDeployKey, "")
	obs.KeyDeployed(chosen)

	obs.StageStarted(StageReportConnection)
	info, err := s.ReportConnection(chosen)
	if err != nil {
		return nil, &StageError{Stage: StageReportConnection, Err: err}
	}
	obs.StageCompleted(StageReportConnection, "")

	return info, nil
}
