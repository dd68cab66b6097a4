package cmd

import (
	"strings"

	"github.com/YangQing-Lin/cmd-baker/internal/baker"
	"github.com/YangQing-Lin/cmd-baker/internal/config"
	"github.com/YangQing-Lin/cmd-baker/internal/console"
	"github.com/YangQing-Lin/cmd-baker/internal/i18n"
	"github.com/YangQing-Lin/cmd-baker/internal/logging"
	"github.com/YangQing-Lin/cmd-baker/internal/shell"
	"github.com/YangQing-Lin/cmd-baker/internal/utils"
	"github.com/YangQing-Lin/cmd-baker/internal/version"
	"github.com/spf13/cobra"
)

const logo = `             _    _       _
 ___ _____ _| |  | |_ ___| |_ ___ ___
|  _|     | . |  | . | .'| '_| -_|  _|
|___|_|_|_|___|  |___|__,|_,_|___|_|
`

// selfBakeInterpreter 自安装命令直接 exec 可执行文件
const selfBakeInterpreter = "exec"

// startup 准备数据目录与配置，构造 Handler，导出 PATH，必要时安装自身。
// 旧版本迁移最多重试一次。
func startup(cmd *cobra.Command) (*app, error) {
	i18n.Init("")

	out := cmd.OutOrStdout()
	a := &app{
		fs:       appFs,
		console:  console.New(out),
		prompter: newPrompterFunc(cmd.InOrStdin(), out),
	}

	base, err := config.BaseDir(a.fs, configDir)
	if err != nil {
		a.errorf("error.cannot_create_base", err)
		a.close()
		return nil, errStartup
	}
	a.baseDir = base
	a.store = config.NewStore(a.fs, config.ConfigPath(base))

	for attempt := 0; ; attempt++ {
		if err := a.prepareConfig(); err != nil {
			a.close()
			return nil, err
		}
		if a.store.Get().HasVersion() {
			break
		}
		if attempt > 0 {
			a.errorf("error.migration_loop")
			a.close()
			return nil, errStartup
		}
		if err := a.migrate(); err != nil {
			a.close()
			return nil, errStartup
		}
	}

	record := a.store.Get()
	i18n.Init(record.Language)

	a.handler = baker.New(a.fs, record.MainPath)
	if home, err := homeDirFunc(); err != nil {
		logging.Logger.Warn().Err(err).Msg("home directory unavailable, PATH export skipped")
	} else {
		a.exporter = shell.NewExporter(a.fs, shell.RCFile(home))
		a.exportPath(record.MainPath)
	}

	if !utils.FileExists(a.fs, config.SelfBakePath(base)) {
		a.selfBake()
	}

	return a, nil
}

// prepareConfig 创建数据目录，首次运行时引导设置，然后读取配置
func (a *app) prepareConfig() error {
	if err := a.fs.MkdirAll(a.baseDir, 0755); err != nil {
		a.errorf("error.cannot_create_base", err)
		return errStartup
	}

	if !a.store.Exists() {
		if err := a.firstRunSetup(); err != nil {
			return err
		}
	}

	if err := a.store.Load(); err != nil {
		a.errorf("error.config_unavailable", err)
		return errStartup
	}
	return nil
}

// firstRunSetup 询问命令目录直到可以创建，然后写入初始配置
func (a *app) firstRunSetup() error {
	a.console.Println(logo)

	for {
		answer, err := a.prompter.Prompt(i18n.T("prompt.main_path"))
		if err != nil {
			a.errorf("error.setup_aborted")
			return errStartup
		}

		answer = strings.TrimSpace(answer)
		if answer == "" {
			a.errorf("error.path_required")
			continue
		}

		dir, err := config.ExpandPath(answer)
		if err != nil {
			a.errorf("error.cannot_create_dir", err)
			continue
		}
		if err := a.fs.MkdirAll(dir, 0755); err != nil {
			a.errorf("error.cannot_create_dir", err)
			continue
		}

		record := config.Record{
			MainPath: dir,
			IsBaked:  false,
			Version:  version.Version,
		}
		if lang := i18n.GetLanguage(); lang != "en" {
			record.Language = lang
		}

		if err := a.store.Write(&record); err != nil {
			a.errorf("error.write_config", err)
			return errStartup
		}

		a.noticef("notice.baked_path", dir)
		return nil
	}
}

// exportPath 确保 dir 在 shell rc 文件的 PATH 中，失败只提示
func (a *app) exportPath(dir string) {
	if a.exporter == nil {
		return
	}

	added, err := a.exporter.Export(dir)
	if err != nil {
		a.errorf("error.export_failed", err)
		return
	}
	if added {
		a.noticef("notice.path_exported", dir, a.exporter.RCPath())
	}
}

// selfBake 把自身安装为 bake 命令，之后继续执行本次动作
func (a *app) selfBake() {
	a.noticef("notice.baking_self")

	exe, err := executableFunc()
	if err != nil {
		a.errorf("error.self_bake", err)
		return
	}

	recipe := baker.NewRecipe(exe, "", selfBakeInterpreter)
	if err := a.handler.Create(config.SelfBakeName, recipe.Bake(), a.baseDir); err != nil {
		a.errorf("error.self_bake", err)
		return
	}

	a.exportPath(a.baseDir)

	if err := a.store.Set(config.KeyIsBaked, true); err != nil {
		a.errorf("error.write_config", err)
		return
	}

	a.noticef("notice.bake_ready")
}
