// Package provision implements the SSH access provisioning workflow: ensure
// a local key pair, list the project's VM instances, let the operator pick
// one, push the public key to it, and derive the connection command.
package provision

import (
	"os"
	"os/user"
	"path/filepath"

	"gcssh/internal/gcloud"
	"gcssh/internal/logger"
)

// Prompter presents instance display lines and returns the operator's
// zero-based choice. ok is false when the operator cancelled.
type Prompter interface {
	Pick(lines []string) (index int, ok bool, err error)
}

// Service wires the provisioning steps to their collaborators. All state
// flows forward through return values; the Service itself holds none.
type Service struct {
	Keys     *KeyStore
	Gcloud   *gcloud.Client
	Prompter Prompter

	// Username resolves the local operator's login name. Overridable so
	// tests get deterministic connection strings.
	Username func() (string, error)

	// SSHConfigPath is the operator's ssh client config, consulted
	// best-effort for an existing alias. Empty disables the lookup.
	SSHConfigPath string

	log logger.Logger
}

// NewService creates a Service with default collaborators.
func NewService(keys *KeyStore, gc *gcloud.Client, prompter Prompter) *Service {
	s := &Service{
		Keys:     keys,
		Gcloud:   gc,
		Prompter: prompter,
		Username: localUsername,
		log:      logger.NewEnvLogger("[provision]"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		s.SSHConfigPath = filepath.Join(home, ".ssh", "config")
	}
	return s
}

// localUsername returns the operator's login name, falling back to $USER.
func localUsername() (string, error) {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username, nil
	}
	if name := os.Getenv("USER"); name != "" {
		return name, nil
	}
	return "", os.ErrNotExist
}
