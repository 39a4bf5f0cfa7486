package ports

import (
	"bytes"
	"os/exec"
)

// RealCmdRunner executes shell commands using the operating system.
type RealCmdRunner struct {
	// Env entries are appended to the child process environment.
	Env []string
}

// Run executes cmd with args and captures stdout and stderr strings.
func (r *RealCmdRunner) Run(cmd string, args ...string) (string, string, error) {
	command := exec.Command(cmd, args...)

	if len(r.Env) > 0 {
		command.Env = append(command.Environ(), r.Env...)
	}

	var stdoutBuffer, stderrBuffer bytes.Buffer
	command.Stdout = &stdoutBuffer
	command.Stderr = &stderrBuffer

	err := command.Run()

	return stdoutBuffer.String(), stderrBuffer.String(), err
}
