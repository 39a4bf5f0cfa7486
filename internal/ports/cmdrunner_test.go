package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealCmdRunner_Run(t *testing.T) {
	runner := &RealCmdRunner{}
	cmd := "echo"
	args := []string{"hello"}

	stdout, stderr, err := runner.Run(cmd, args...)

	assert.NoError(t, err)
	assert.Equal(t, "hello\n", stdout)
	assert.Equal(t, "", stderr)
}

func TestRealCmdRunner_RunWithEnv(t *testing.T) {
	runner := &RealCmdRunner{Env: []string{"MKTEMP_PATH=/tmp/scratch"}}

	stdout, stderr, err := runner.Run("sh", "-c", "printf '%s' \"$MKTEMP_PATH\"")

	assert.NoError(t, err)
	assert.Equal(t, "/tmp/scratch", stdout)
	assert.Equal(t, "", stderr)
}
