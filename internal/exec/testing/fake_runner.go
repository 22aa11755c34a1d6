// Package testing provides a fake Runner for exercising the provisioning
// workflow without spawning real processes.
package testing

import (
	"fmt"
	"strings"

	"gcssh/internal/exec"
)

// Call records one invocation made through the fake.
type Call struct {
	Program string
	Args    []string
}

// Line returns the call as a single command line, for readable assertions.
func (c Call) Line() string {
	return strings.Join(append([]string{c.Program}, c.Args...), " ")
}

// response is one scripted reply.
type response struct {
	result exec.Result
	err    error
}

// FakeRunner is a scriptable Runner. Responses are consumed in FIFO order;
// every call is recorded. If the script runs dry the fake fails loudly so a
// test never silently succeeds on an unexpected extra invocation.
type FakeRunner struct {
	Calls     []Call
	responses []response
}

// NewFakeRunner creates an empty fake with no scripted responses.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{}
}

// Enqueue scripts the next response.
func (f *FakeRunner) Enqueue(result exec.Result, err error) *FakeRunner {
	f.responses = append(f.responses, response{result: result, err: err})
	return f
}

// EnqueueSuccess scripts a zero-exit response with the given stdout.
func (f *FakeRunner) EnqueueSuccess(stdout string) *FakeRunner {
	return f.Enqueue(exec.Result{ExitCode: 0, Stdout: []byte(stdout)}, nil)
}

// EnqueueFailure scripts a non-zero response with the given stderr.
func (f *FakeRunner) EnqueueFailure(exitCode int, stderr string) *FakeRunner {
	return f.Enqueue(exec.Result{ExitCode: exitCode, Stderr: []byte(stderr)}, nil)
}

// Run implements exec.Runner.
func (f *FakeRunner) Run(program string, args ...string) (exec.Result, error) {
	f.Calls = append(f.Calls, Call{Program: program, Args: args})

	if len(f.responses) == 0 {
		return exec.Result{ExitCode: -1},
			fmt.Errorf("fake runner: unexpected call %q", program+" "+strings.Join(args, " "))
	}

	next := f.responses[0]
	f.responses = f.responses[1:]
	return next.result, next.err
}

// CallCount returns the number of invocations recorded.
func (f *FakeRunner) CallCount() int {
	return len(f.Calls)
}

// LastCall returns the most recent invocation, or a zero Call if none.
func (f *FakeRunner) LastCall() Call {
	if len(f.Calls) == 0 {
		return Call{}
	}
	return f.Calls[len(f.Calls)-1]
}
