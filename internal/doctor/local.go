package doctor

import (
	"fmt"
	"os/exec"

	"gcssh/internal/config"
	"gcssh/internal/gcloud"
	"gcssh/internal/provision"
)

// SSHClientCheck verifies an ssh client is available for the final
// connection command.
type SSHClientCheck struct{}

func (c *SSHClientCheck) Name() string     { return "ssh_client" }
func (c *SSHClientCheck) Category() string { return "SSH" }

func (c *SSHClientCheck) Run() CheckResult {
	path, err := exec.LookPath("ssh")
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "ssh not found in PATH",
			Suggestion: "Install an OpenSSH client: apt install openssh-client (or equivalent)",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("ssh client found: %s", path),
	}
}

func (c *SSHClientCheck) Fix() error { return nil }

// KeyPairCheck inspects the local credential store. A missing pair is only
// a warning: the workflow generates one on demand, and --fix does the same
// thing up front.
type KeyPairCheck struct {
	Keys *provision.KeyStore
}

func (c *KeyPairCheck) Name() string     { return "ssh_key_pair" }
func (c *KeyPairCheck) Category() string { return "SSH" }

func (c *KeyPairCheck) Run() CheckResult {
	if !c.Keys.HasKeyPair() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No key pair in " + c.Keys.Dir,
			Suggestion: "One will be generated on the first run.",
			Fixable:    true,
		}
	}

	if _, err := c.Keys.ReadPublicKey(); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Public key is unreadable or malformed: " + c.Keys.PublicKeyPath(),
			Suggestion: "Remove the pair and let the next run regenerate it.",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Key pair present (%s)", c.Keys.Fingerprint()),
	}
}

// Fix generates the key pair the same way the workflow would.
func (c *KeyPairCheck) Fix() error {
	return c.Keys.EnsureKeyPair()
}

// ConfigCheck validates the operator's config file.
type ConfigCheck struct {
	Path string
}

func (c *ConfigCheck) Name() string     { return "config_file" }
func (c *ConfigCheck) Category() string { return "CONFIG" }

func (c *ConfigCheck) Run() CheckResult {
	cfg, err := config.Load(c.Path)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Config file could not be loaded: " + c.Path,
			Suggestion: "Fix or delete it; defaults apply when it is absent.",
		}
	}
	if err := cfg.Validate(); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Config file is invalid: " + err.Error(),
			Suggestion: "Regenerate defaults with: gcssh init",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Config OK",
	}
}

func (c *ConfigCheck) Fix() error { return nil }

// NewChecks assembles the full diagnostic suite.
func NewChecks(client *gcloud.Client, keys *provision.KeyStore, configPath string) []Check {
	return []Check{
		&GcloudBinaryCheck{Client: client},
		&GcloudAuthCheck{Client: client},
		&SSHClientCheck{},
		&KeyPairCheck{Keys: keys},
		&ConfigCheck{Path: configPath},
	}
}
