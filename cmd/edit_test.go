package cmd

import (
	"path/filepath"
	"testing"

	"github.com/YangQing-Lin/cmd-baker/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditInterpreterOnly(t *testing.T) {
	env := newTestEnv(t).install(t)
	env.bakeCommand(t, "deploy", "/scripts/deploy.py")

	out, err := runCLI(t, "\n\nbash\n\n", "-e", "deploy")
	require.NoError(t, err)

	assert.Contains(t, out, "#!/bin/zsh\npython3 /scripts/deploy.py $@\n")
	assert.Contains(t, out, "Command name (leave empty for same one): ")
	assert.Contains(t, out, "Source (leave empty for same one): ")
	assert.Contains(t, out, "[notice] Edited 'deploy'")
	assert.Equal(t, "#!/bin/zsh\nbash /scripts/deploy.py $@", env.readFile(t, filepath.Join(testBin, "deploy")))
}

func TestEditAllFields(t *testing.T) {
	env := newTestEnv(t).install(t)
	env.bakeCommand(t, "deploy", "/scripts/deploy.py")

	_, err := runCLI(t, "\n#!/bin/bash\nnode\n/srv/deploy.js\n", "-e", "deploy")
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/bash\nnode /srv/deploy.js $@", env.readFile(t, filepath.Join(testBin, "deploy")))
}

func TestEditRename(t *testing.T) {
	env := newTestEnv(t).install(t)
	env.bakeCommand(t, "deploy", "/scripts/deploy.py")

	out, err := runCLI(t, "Ship\n\n\n\n", "-e", "deploy")
	require.NoError(t, err)
	assert.Contains(t, out, "[notice] Renamed 'deploy' to 'ship'")
	assert.False(t, utils.FileExists(env.fs, filepath.Join(testBin, "deploy")))
	assert.Equal(t, "#!/bin/zsh\npython3 /scripts/deploy.py $@", env.readFile(t, filepath.Join(testBin, "ship")))
}

func TestEditRenameConflict(t *testing.T) {
	env := newTestEnv(t).install(t)
	env.bakeCommand(t, "deploy", "/scripts/deploy.py")
	env.bakeCommand(t, "ship", "/scripts/ship.py")

	out, err := runCLI(t, "ship\n\nbash\n\n", "-e", "deploy")
	require.NoError(t, err)
	assert.Contains(t, out, "[error] Command 'ship' already exists")
	assert.Equal(t, "#!/bin/zsh\npython3 /scripts/deploy.py $@", env.readFile(t, filepath.Join(testBin, "deploy")))
	assert.Equal(t, "#!/bin/zsh\npython3 /scripts/ship.py $@", env.readFile(t, filepath.Join(testBin, "ship")))
}

func TestEditRenameToReserved(t *testing.T) {
	env := newTestEnv(t).install(t)
	env.bakeCommand(t, "deploy", "/scripts/deploy.py")

	out, err := runCLI(t, "bake\n\n\n\n", "-e", "deploy")
	require.NoError(t, err)
	assert.Contains(t, out, "[error] Command name cannot be 'bake'")
	assert.True(t, utils.FileExists(env.fs, filepath.Join(testBin, "deploy")))
}

func TestEditRenameStaleCopy(t *testing.T) {
	env := newTestEnv(t).install(t)
	env.bakeCommand(t, "deploy", "/scripts/deploy.py")
	env.stubs.Stub(&appFs, removeFailFs{Fs: env.fs})

	out, err := runCLI(t, "ship\n\n\n\n", "-e", "deploy")
	require.NoError(t, err)
	assert.Contains(t, out, "[error] Both 'deploy' and 'ship' exist now, delete 'deploy' manually")
	assert.True(t, utils.FileExists(env.fs, filepath.Join(testBin, "deploy")))
	assert.True(t, utils.FileExists(env.fs, filepath.Join(testBin, "ship")))
}

func TestEditInvalidShebang(t *testing.T) {
	env := newTestEnv(t).install(t)
	env.bakeCommand(t, "deploy", "/scripts/deploy.py")

	out, err := runCLI(t, "\n/bin/bash\n\n\n", "-e", "deploy")
	require.NoError(t, err)
	assert.Contains(t, out, "[error] Invalid command:")
	assert.Equal(t, "#!/bin/zsh\npython3 /scripts/deploy.py $@", env.readFile(t, filepath.Join(testBin, "deploy")))
}

func TestEditEndOfInputKeepsRemainingFields(t *testing.T) {
	env := newTestEnv(t).install(t)
	env.bakeCommand(t, "deploy", "/scripts/deploy.py")

	out, err := runCLI(t, "\n\nbash", "-e", "deploy")
	require.NoError(t, err)
	assert.Contains(t, out, "[notice] Edited 'deploy'")
	assert.Equal(t, "#!/bin/zsh\nbash /scripts/deploy.py $@", env.readFile(t, filepath.Join(testBin, "deploy")))
}

func TestEditMissingCommand(t *testing.T) {
	newTestEnv(t).install(t)

	out, err := runCLI(t, "", "-e", "deploy")
	require.NoError(t, err)
	assert.Equal(t, "[error] Command 'deploy' does not exist\n", out)
}

func TestEditMalformedCommandSkipsPrompts(t *testing.T) {
	env := newTestEnv(t).install(t)
	env.writeFile(t, filepath.Join(testBin, "notes"), "just some text", 0644)

	out, err := runCLI(t, "ship\n\nbash\n\n", "-e", "notes")
	require.NoError(t, err)
	assert.Contains(t, out, "[error] Command 'notes' is not a baked command:")
	assert.NotContains(t, out, "leave empty for same one")
	assert.Equal(t, "just some text", env.readFile(t, filepath.Join(testBin, "notes")))
	assert.False(t, utils.FileExists(env.fs, filepath.Join(testBin, "ship")))
}
