package cmd

import (
	"errors"

	"github.com/YangQing-Lin/cmd-baker/internal/baker"
	"github.com/YangQing-Lin/cmd-baker/internal/config"
	"github.com/YangQing-Lin/cmd-baker/internal/console"
	"github.com/YangQing-Lin/cmd-baker/internal/i18n"
	"github.com/YangQing-Lin/cmd-baker/internal/shell"
	"github.com/spf13/afero"
)

// app 一次调用的全部状态，启动时构造后传给各个动作
type app struct {
	fs       afero.Fs
	console  *console.Console
	prompter console.Prompter
	baseDir  string
	store    *config.Store
	handler  *baker.Handler
	exporter *shell.Exporter
}

func (a *app) close() {
	if a.prompter != nil {
		_ = a.prompter.Close()
	}
}

func (a *app) errorf(key string, args ...interface{}) {
	a.console.Print(console.Error, i18n.T(key, args...))
}

func (a *app) noticef(key string, args ...interface{}) {
	a.console.Print(console.Notice, i18n.T(key, args...))
}

func (a *app) warnf(key string, args ...interface{}) {
	a.console.Print(console.Warning, i18n.T(key, args...))
}

// reportCommandError 把 Handler 返回的错误转换为用户可读的消息
// fallbackKey 用于 I/O 等未分类的错误
func (a *app) reportCommandError(err error, name, fallbackKey string) {
	switch {
	case errors.Is(err, baker.ErrReservedName):
		a.errorf("error.reserved_name")
	case errors.Is(err, baker.ErrAlreadyExists):
		a.errorf("error.command_exists", name)
	case errors.Is(err, baker.ErrNotFound):
		a.errorf("error.command_not_found", name)
		if suggestion, ok := a.handler.Suggest(name); ok {
			a.noticef("notice.did_you_mean", suggestion)
		}
	case errors.Is(err, baker.ErrInvalidName):
		a.errorf("error.invalid_name", err)
	case errors.Is(err, baker.ErrInvalidRecipe):
		a.errorf("error.invalid_recipe", err)
	case errors.Is(err, baker.ErrMalformedContent):
		a.errorf("error.malformed", name, err)
	default:
		a.errorf(fallbackKey, err)
	}
}
