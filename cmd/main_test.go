package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := buildRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUnknownPositionalArgPrintsHelp(t *testing.T) {
	out, err := executeCmd(t, "bogus")
	require.NoError(t, err, "a stray argument is a notice, not a failure")
	assert.Contains(t, out, "Unknown option: bogus")
	assert.Contains(t, out, "Usage:")
}

func TestUnknownFlagPrintsHelp(t *testing.T) {
	out, err := executeCmd(t, "--definitely-not-a-flag")
	require.NoError(t, err)
	assert.Contains(t, out, "Unknown option:")
	assert.Contains(t, out, "Usage:")
}

func TestHelpFlag(t *testing.T) {
	out, err := executeCmd(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "stagehand")
	assert.Contains(t, out, "--path")
}

func TestVersionFlag(t *testing.T) {
	out, err := executeCmd(t, "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "stagehand "))
}

func TestVersionSubcommandJSON(t *testing.T) {
	// The version subcommand writes JSON to stdout directly; this only
	// asserts the command wiring accepts the flag.
	cmd := buildVersionCmd()
	cmd.SetArgs([]string{"--json"})
	assert.NoError(t, cmd.Execute())
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	cmd := buildRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"completion", "tcsh"})
	assert.Error(t, cmd.Execute())
}
