package provision

import (
	"strings"

	"gcssh/internal/errors"
	"gcssh/internal/util"
)

// BuildRemoteCommand assembles the shell command run on the target VM.
// Ordering matters: the directory is created and locked down before the
// append, and the authorized-keys file is tightened after, so the file is
// never left world-readable. The append is deliberately not deduplicated;
// authorized-keys files tolerate duplicate entries.
func BuildRemoteCommand(publicKey string) string {
	key := strings.TrimSpace(publicKey)
	return "mkdir -p ~/.ssh && " +
		"chmod 700 ~/.ssh && " +
		"echo " + util.ShellQuote(key) + " >> ~/.ssh/authorized_keys && " +
		"chmod 600 ~/.ssh/authorized_keys"
}

// DeployKey installs the local public key into the instance's
// authorized-keys file via the external CLI's remote execution. Assumes
// EnsureKeyPair already ran in this invocation; the only local check left
// is the read itself.
func (s *Service) DeployKey(inst *Instance) error {
	publicKey, err := s.Keys.ReadPublicKey()
	if err != nil {
		return err
	}

	remoteCmd := BuildRemoteCommand(publicKey)
	s.log.Debug("deploying key to %s (%s)", inst.Name, inst.Zone())

	result, err := s.Gcloud.RunRemote(inst.Name, inst.Zone(), remoteCmd)
	if err != nil {
		return errors.Wrap(err, errors.ErrDeploy,
			"Couldn't copy the SSH key to "+inst.Name, "")
	}
	if !result.Success() {
		return errors.WithDetail(errors.ErrDeploy,
			"Couldn't copy the SSH key to "+inst.Name,
			result.StderrText())
	}

	return nil
}
