package cmd

import (
	"context"
	"path/filepath"

	"github.com/YangQing-Lin/cmd-baker/internal/baker"
)

// into 在命令脚本所在目录启动 shell
func (a *app) into(ctx context.Context, name string) {
	name = baker.NormalizeName(name)
	source, err := a.handler.Source(name)
	if err != nil {
		a.reportCommandError(err, name, "error.into_failed")
		return
	}

	if err := spawnShellFunc(ctx, filepath.Dir(source)); err != nil {
		a.errorf("error.into_failed", err)
	}
}

// editScript 用编辑器打开命令指向的脚本
func (a *app) editScript(ctx context.Context, name string) {
	name = baker.NormalizeName(name)
	source, err := a.handler.Source(name)
	if err != nil {
		a.reportCommandError(err, name, "error.editor_failed")
		return
	}

	if err := openEditorFunc(ctx, source); err != nil {
		a.errorf("error.editor_failed", err)
	}
}
