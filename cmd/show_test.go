package cmd

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCommand(t *testing.T) {
	env := newTestEnv(t).install(t)
	env.bakeCommand(t, "deploy", "/scripts/deploy.py")

	out, err := runCLI(t, "", "-w", "deploy")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`(?m)^\[shebang\]\s+#!/bin/zsh$`), out)
	assert.Regexp(t, regexp.MustCompile(`(?m)^\[interpreter\]\s+python3$`), out)
	assert.Regexp(t, regexp.MustCompile(`(?m)^\[path\]\s+/scripts/deploy\.py$`), out)
	assert.Regexp(t, regexp.MustCompile(`(?m)^\[symbol\]\s+\$@$`), out)
}

func TestViewAlignsValues(t *testing.T) {
	env := newTestEnv(t).install(t)
	env.bakeCommand(t, "deploy", "/scripts/deploy.py")

	out, err := runCLI(t, "", "--view", "deploy")
	require.NoError(t, err)

	col := regexp.MustCompile(`(?m)^(\[\w+\]\s+)\S`)
	matches := col.FindAllStringSubmatch(out, -1)
	require.Len(t, matches, 4)
	for _, m := range matches[1:] {
		assert.Equal(t, len(matches[0][1]), len(m[1]))
	}
}

func TestViewMissingCommand(t *testing.T) {
	env := newTestEnv(t).install(t)
	env.bakeCommand(t, "deploy", "/scripts/deploy.py")

	out, err := runCLI(t, "", "-w", "deploi")
	require.NoError(t, err)
	assert.Contains(t, out, "[error] Command 'deploi' does not exist")
	assert.Contains(t, out, "[notice] Did you mean 'deploy'?")
}

func TestViewMalformedCommand(t *testing.T) {
	env := newTestEnv(t).install(t)
	env.writeFile(t, testBin+"/notes", "just some text", 0644)

	out, err := runCLI(t, "", "-w", "notes")
	require.NoError(t, err)
	assert.Contains(t, out, "[error] Command 'notes' is not a baked command:")
	assert.NotContains(t, out, "[shebang]")
}
