package runner

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellRun(t *testing.T) {
	tests := []struct {
		name       string
		command    string
		wantOutput string
		wantOK     bool
		wantStderr string
	}{
		{
			name:       "trims stdout",
			command:    "printf '  1.2.3  \\n\\n'",
			wantOutput: "1.2.3",
			wantOK:     true,
		},
		{
			name:       "empty output still succeeds",
			command:    "true",
			wantOutput: "",
			wantOK:     true,
		},
		{
			name:       "non-zero exit carries stderr",
			command:    "echo nope >&2; exit 3",
			wantOK:     false,
			wantStderr: "nope",
		},
		{
			name:    "missing binary",
			command: "definitely-not-a-real-binary-devsetup --version",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Shell{}.Run(context.Background(), tt.command)
			assert.Equal(t, tt.wantOK, res.OK())
			if tt.wantOK {
				assert.Equal(t, tt.wantOutput, res.Output)
				return
			}

			var cerr *CommandError
			require.True(t, errors.As(res.Err, &cerr))
			assert.Equal(t, tt.command, cerr.Command)
			if tt.wantStderr != "" {
				assert.Equal(t, tt.wantStderr, cerr.Stderr)
				assert.Contains(t, cerr.Error(), tt.wantStderr)
			}
		})
	}
}

func TestShellRunExitCodeUnwraps(t *testing.T) {
	res := Shell{}.Run(context.Background(), "exit 7")
	var exitErr *exec.ExitError
	require.True(t, errors.As(res.Err, &exitErr))
	assert.Equal(t, 7, exitErr.ExitCode())
}

func TestShellRunEnv(t *testing.T) {
	res := Shell{Env: []string{"DEVSETUP_TEST_VALUE=hello"}}.Run(context.Background(), "echo $DEVSETUP_TEST_VALUE")
	require.True(t, res.OK())
	assert.Equal(t, "hello", res.Output)
}

func TestDryRunNeverExecutes(t *testing.T) {
	res := DryRun{}.Run(context.Background(), "exit 1")
	assert.True(t, res.OK())
	assert.Equal(t, "would run: exit 1", res.Output)
}

func TestJoinQuotesOperatorInput(t *testing.T) {
	cmd := Join("echo", "Ada Lovelace", "it's")
	res := Shell{}.Run(context.Background(), cmd)
	require.True(t, res.OK())
	assert.Equal(t, "Ada Lovelace it's", res.Output)
}
