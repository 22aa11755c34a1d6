package doctor

import (
	"fmt"
	"os/exec"
	"strings"

	"gcssh/internal/gcloud"
)

// GcloudBinaryCheck verifies the cloud CLI is installed and runnable.
type GcloudBinaryCheck struct {
	Client *gcloud.Client
}

func (c *GcloudBinaryCheck) Name() string     { return "gcloud_binary" }
func (c *GcloudBinaryCheck) Category() string { return "GCLOUD" }

func (c *GcloudBinaryCheck) Run() CheckResult {
	binary := c.Client.Binary()
	if _, err := exec.LookPath(binary); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s not found in PATH", binary),
			Suggestion: "Install the Google Cloud SDK: https://cloud.google.com/sdk/docs/install",
		}
	}

	result, err := c.Client.Version()
	if err != nil || !result.Success() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%s found but `%s version` failed", binary, binary),
			Suggestion: "Run `gcloud version` yourself to see what is wrong.",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s %s", binary, firstLine(result.Stdout)),
	}
}

// Fix cannot install system packages.
func (c *GcloudBinaryCheck) Fix() error { return nil }

// GcloudAuthCheck verifies an account is logged in. Listing and remote
// deployment both fail with opaque errors otherwise, so catching it here
// saves the operator a round trip.
type GcloudAuthCheck struct {
	Client *gcloud.Client
}

func (c *GcloudAuthCheck) Name() string     { return "gcloud_auth" }
func (c *GcloudAuthCheck) Category() string { return "GCLOUD" }

func (c *GcloudAuthCheck) Run() CheckResult {
	result, err := c.Client.ActiveAccount()
	if err != nil || !result.Success() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Couldn't query authentication state",
			Suggestion: "Run: gcloud auth list",
		}
	}

	account := strings.TrimSpace(string(result.Stdout))
	if account == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "No active gcloud account",
			Suggestion: "Log in with: gcloud auth login",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Authenticated as %s", account),
	}
}

// Fix cannot log in on the operator's behalf.
func (c *GcloudAuthCheck) Fix() error { return nil }

func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		return s[:idx]
	}
	return s
}
