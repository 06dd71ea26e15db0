package daemon

import (
	"bytes"
	"os/exec"
)

// Runner executes a command and captures both of its output streams.
type Runner interface {
	Run(name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner runs commands found on PATH
type ExecRunner struct{}

var _ Runner = ExecRunner{}

// Run blocks until the command exits.
func (ExecRunner) Run(name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
