// Package gcloud drives the Google Cloud CLI as an opaque subprocess.
// It only knows how to build the three subcommand invocations the
// provisioning workflow needs and depends solely on the documented
// exit-status/stdout/stderr contract of the tool.
package gcloud

import (
	"gcssh/internal/exec"
	"gcssh/internal/logger"
)

// DefaultBinary is the gcloud executable name resolved via PATH.
const DefaultBinary = "gcloud"

// Client invokes gcloud subcommands through a Runner.
type Client struct {
	binary string
	runner exec.Runner
	log    logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBinary overrides the gcloud executable path.
func WithBinary(path string) Option {
	return func(c *Client) { c.binary = path }
}

// WithLogger sets the debug logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a Client running commands through r.
func NewClient(r exec.Runner, opts ...Option) *Client {
	c := &Client{
		binary: DefaultBinary,
		runner: r,
		log:    logger.NewEnvLogger("[gcloud]"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateSSHKeys runs the key-generation subcommand. No stdin; exit 0 means
// the key pair was written to the credential store.
func (c *Client) CreateSSHKeys() (exec.Result, error) {
	return c.run("compute", "ssh-keys", "create")
}

// ListInstances runs the instance-listing subcommand requesting JSON output.
// On success, stdout holds a JSON array of instance records.
func (c *Client) ListInstances() (exec.Result, error) {
	return c.run("compute", "instances", "list", "--format=json")
}

// RunRemote executes a shell command on the named instance in the given zone
// through the remote-execution subcommand.
func (c *Client) RunRemote(instance, zone, command string) (exec.Result, error) {
	return c.run("compute", "ssh", instance, "--zone", zone, "--command", command)
}

// Version runs `gcloud version`, used by diagnostics.
func (c *Client) Version() (exec.Result, error) {
	return c.run("version")
}

// ActiveAccount returns the active authenticated account, used by
// diagnostics. Empty stdout means nobody is logged in.
func (c *Client) ActiveAccount() (exec.Result, error) {
	return c.run("auth", "list", "--filter=status:ACTIVE", "--format=value(account)")
}

// Binary returns the configured executable name.
func (c *Client) Binary() string {
	return c.binary
}

func (c *Client) run(args ...string) (exec.Result, error) {
	c.log.Debug("running %s %v", c.binary, args)
	result, err := c.runner.Run(c.binary, args...)
	c.log.Debug("exit=%d stdout=%dB stderr=%dB", result.ExitCode, len(result.Stdout), len(result.Stderr))
	return result, err
}
