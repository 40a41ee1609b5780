package command_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoruboku/vito-setup/pkg/command"
)

func TestRun_CapturesOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	runner := command.New(command.WithOutput(&stdout, &stderr))

	err := runner.Run(context.Background(), "sh", "-c", "echo provisioned")
	require.NoError(t, err)
	assert.Equal(t, "provisioned\n", stdout.String())
}

func TestRun_NonZeroExitIsError(t *testing.T) {
	runner := command.New(command.WithOutput(&bytes.Buffer{}, &bytes.Buffer{}))

	err := runner.Run(context.Background(), "sh", "-c", "exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sh -c exit 3")
}

func TestRun_HonoursWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), nil, 0o644))

	var stdout bytes.Buffer
	runner := command.New(command.WithDir(dir), command.WithOutput(&stdout, &bytes.Buffer{}))

	err := runner.Run(context.Background(), "ls")
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "marker.txt")
}

func TestLook_MissingCommand(t *testing.T) {
	runner := command.New()

	_, err := runner.Look("definitely-not-a-real-tool-7f3a")
	require.Error(t, err)

	path, err := runner.Look("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}
