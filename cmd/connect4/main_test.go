package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/iamasit07/4-in-a-row/engine/internal/config"
)

func TestExecute_ReturnsConfigErrors(t *testing.T) {
	chdir(t, t.TempDir())

	err := execute([]string{"connect4", "--width", "0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestExecute_UnknownMode(t *testing.T) {
	chdir(t, t.TempDir())

	err := execute([]string{"connect4", "--mode", "online"})
	assert.Error(t, err)
}

func TestApplyFlags_OnlyExplicitFlagsOverride(t *testing.T) {
	cfg := &config.Config{Width: 7, Height: 6, LogLevel: "info", LogFormat: "production"}

	cmd := newCommand()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		applyFlags(cfg, c)
		return nil
	}
	require.NoError(t, cmd.Run(context.Background(), []string{"connect4", "--width", "9", "-m", "local"}))

	assert.Equal(t, 9, cfg.Width)
	assert.Equal(t, 6, cfg.Height)
	assert.Equal(t, "local", cfg.Mode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
}
