package cmd

import (
	"github.com/YangQing-Lin/cmd-baker/internal/config"
	"github.com/YangQing-Lin/cmd-baker/internal/console"
	"github.com/YangQing-Lin/cmd-baker/internal/i18n"
	"github.com/spf13/afero"
)

// printMainPath 输出命令目录
func (a *app) printMainPath() {
	a.console.Print(console.Notice, a.store.Get().MainPath)
}

// changeMainPath 修改命令目录，目录必须已存在
func (a *app) changeMainPath(path string) {
	dir, err := config.ExpandPath(path)
	if err != nil {
		a.errorf("error.path_not_exist", path)
		return
	}

	if ok, err := afero.DirExists(a.fs, dir); err != nil || !ok {
		a.errorf("error.path_not_exist", path)
		return
	}

	if err := a.store.Set(config.KeyMainPath, dir); err != nil {
		a.errorf("error.write_config", err)
		return
	}

	a.exportPath(dir)
	a.noticef("notice.main_path_changed", dir)
}

// redoSetup 确认后备份并删除配置，下次运行重新初始化
func (a *app) redoSetup() {
	ok, err := console.Confirm(a.prompter, i18n.T("confirm.redo_setup"), console.DefaultNone)
	if err != nil {
		a.errorf("error.prompt_failed", err)
		return
	}
	if !ok {
		return
	}

	backup, err := a.store.Remove()
	if err != nil {
		a.errorf("error.write_config", err)
		return
	}

	a.noticef("notice.config_removed")
	if backup != "" {
		a.noticef("notice.config_backup", backup)
	}
}
