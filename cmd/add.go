package cmd

import (
	"github.com/YangQing-Lin/cmd-baker/internal/baker"
	"github.com/YangQing-Lin/cmd-baker/internal/config"
	"github.com/YangQing-Lin/cmd-baker/internal/console"
	"github.com/YangQing-Lin/cmd-baker/internal/i18n"
	"github.com/YangQing-Lin/cmd-baker/internal/utils"
)

// bake 创建新命令：cmd-baker <name> <source>
func (a *app) bake(name, source, shebangOverride, interpreterOverride string) {
	abs, err := config.ExpandPath(source)
	if err != nil {
		a.errorf("error.create_failed", err)
		return
	}
	if !utils.FileExists(a.fs, abs) {
		a.warnf("warning.source_missing", abs)
	}

	recipe := baker.NewRecipe(abs, shebangOverride, interpreterOverride)
	normalized, err := a.handler.Add(name, recipe)
	if err != nil {
		a.reportCommandError(err, normalized, "error.create_failed")
		return
	}

	a.console.Print(console.Cmd, i18n.T("cmd.baked", normalized))
}
