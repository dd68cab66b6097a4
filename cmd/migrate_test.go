package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/YangQing-Lin/cmd-baker/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateOldInstallation(t *testing.T) {
	env := newTestEnv(t).install(t)
	env.writeConfig(t, `{"main_path": "/home/u/bin", "is_baked": true}`)
	env.writeFile(t, filepath.Join(testBin, "bake"), "#!/bin/zsh\nexec /old/bake $@", 0755)
	env.bakeCommand(t, "deploy", "/scripts/deploy.py")

	out, err := runCLI(t, "", "-p")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "You are on an old version of bake."))
	assert.Contains(t, out, "[notice] Successfully deleted old bake command.")
	assert.Contains(t, out, "[notice] Baking self...")
	assert.Contains(t, out, "[notice] "+testBin)

	assert.False(t, utils.FileExists(env.fs, filepath.Join(testBin, "bake")))
	assert.True(t, utils.FileExists(env.fs, filepath.Join(testBin, "deploy")))
	assert.Equal(t, "#!/bin/zsh\nexec "+testExePath+" $@", env.readFile(t, filepath.Join(testBase, "bake")))

	rec := env.record(t)
	assert.Equal(t, 1.4, rec["version"])
	assert.Equal(t, true, rec["is_baked"])
	assert.Equal(t, testBin, rec["main_path"])
}

func TestMigrateWithoutOldFiles(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, `{"main_path": "/home/u/bin", "is_baked": false}`)

	out, err := runCLI(t, "", "-p")
	require.NoError(t, err)
	assert.Contains(t, out, "[warning] You are on an old version of bake.")
	assert.Contains(t, out, "[notice] Successfully deleted old bake command.")
	assert.Equal(t, 1.4, env.record(t)["version"])
}

func TestMigrateRemoveFailure(t *testing.T) {
	env := newTestEnv(t).install(t)
	env.writeConfig(t, `{"main_path": "/home/u/bin", "is_baked": true}`)
	env.stubs.Stub(&appFs, removeFailFs{Fs: env.fs})

	out, err := runCLI(t, "", "-p")
	require.ErrorIs(t, err, errStartup)
	assert.Contains(t, out, "[notice] You can delete it manually located at: "+filepath.Join(testBase, "bake"))
	assert.Contains(t, out, "[notice] You can delete it manually located at: "+filepath.Join(testBin, "bake"))
	assert.Contains(t, out, "[error] An error occurred deleting the old bake file:")
	assert.NotContains(t, out, "[notice] "+testBin+"\n")
	assert.NotContains(t, env.record(t), "version")
}
