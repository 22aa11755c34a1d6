// Package exec abstracts external process execution behind a narrow Runner
// capability so the provisioning workflow can be tested against a fake.
package exec

import (
	"bytes"
	osexec "os/exec"

	"gcssh/internal/errors"
)

// Result holds the outcome of one external command invocation.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the command exited zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// StderrText returns captured stderr as a string, verbatim.
func (r Result) StderrText() string {
	return string(r.Stderr)
}

// Runner executes an external program and captures its output.
// A non-zero exit status is reported through Result, not through the error:
// the error is reserved for failures to run the program at all.
type Runner interface {
	Run(program string, args ...string) (Result, error)
}

// Local runs commands on the local machine, blocking until the child exits.
type Local struct{}

// NewLocal returns a Runner backed by os/exec.
func NewLocal() Local {
	return Local{}
}

// Run executes program with args, capturing stdout and stderr separately.
func (Local) Run(program string, args ...string) (Result, error) {
	cmd := osexec.Command(program, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	result := Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if runErr != nil {
		// Command ran but returned non-zero: that's the caller's contract
		// to interpret, not an execution error.
		if exitErr, ok := runErr.(*osexec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		result.ExitCode = -1
		return result, errors.Wrap(runErr, errors.ErrExec,
			"Couldn't run "+program,
			"Make sure "+program+" is installed and on your PATH.")
	}

	return result, nil
}
