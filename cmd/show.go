package cmd

import (
	"github.com/YangQing-Lin/cmd-baker/internal/baker"
	"github.com/YangQing-Lin/cmd-baker/internal/console"
)

// view 输出命令的四个字段
func (a *app) view(name string) {
	name = baker.NormalizeName(name)
	command, err := a.handler.View(name)
	if err != nil {
		a.reportCommandError(err, name, "error.read_failed")
		return
	}

	a.console.Field(console.Shebang, command.Recipe.Shebang)
	a.console.Field(console.Interpreter, command.Recipe.Interpreter)
	a.console.Field(console.Path, command.Recipe.Source)
	a.console.Field(console.Symbol, command.Symbol)
}
