package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/YangQing-Lin/cmd-baker/internal/console"
	"github.com/YangQing-Lin/cmd-baker/internal/i18n"
	"github.com/YangQing-Lin/cmd-baker/internal/logging"
	"github.com/YangQing-Lin/cmd-baker/internal/shell"
	"github.com/YangQing-Lin/cmd-baker/internal/version"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	// errUsage 参数不足或组合错误，已打印用法
	errUsage = errors.New("usage")
	// errStartup 启动流程失败，错误已输出
	errStartup = errors.New("startup failed")
)

// 命令行参数
var (
	configDir      string
	interpreter    string
	shebang        string
	listFlag       bool
	listVerbose    bool
	listFilter     string
	listFormat     string
	deleteName     string
	editName       string
	viewName       string
	printFlag      bool
	mainPath       string
	configFlag     bool
	updateFlag     bool
	forceFlag      bool
	intoName       string
	editScriptName string
	versionFlag    bool
)

// 可在测试中替换的外部依赖
var (
	appFs                 afero.Fs = afero.NewOsFs()
	executableFunc                 = os.Executable
	homeDirFunc                    = homedir.Dir
	fetchLatestFunc                = version.FetchLatest
	selfUpdateEnabledFunc          = version.SelfUpdateEnabled
	runUpdateFunc                  = version.Update
	spawnShellFunc                 = shell.SpawnIn
	openEditorFunc                 = shell.OpenEditor
	newPrompterFunc                = console.NewPrompter
)

var actionFlags = []string{
	"list", "delete", "edit", "view", "print", "main", "config",
	"update", "force-update", "into", "edit-script", "version",
}

var rootCmd = &cobra.Command{
	Use:   "cmd-baker [command_name] [source]",
	Short: "Easily bake new commands",
	Long: `cmd-baker wraps a script into an executable command on your PATH.

  cmd-baker deploy ./deploy.py          bake 'deploy' running deploy.py with python3
  cmd-baker deploy ./deploy.sh -i bash  choose the interpreter
  cmd-baker -l                          list baked commands
  cmd-baker -e deploy                   edit a command interactively

After the first run the tool installs itself as 'bake'.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateArgs(cmd, args); err != nil {
			return err
		}

		a, err := startup(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		return a.dispatch(cmd.Context(), cmd, args)
	},
}

// Execute 执行根命令，启动失败或用法错误时以 1 退出
func Execute() {
	logging.Init(logging.DefaultConfig())

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, errStartup) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&interpreter, "interpreter", "i", "", "Interpreter used to run the script (default python3)")
	flags.StringVarP(&shebang, "shebang", "s", "", "Shebang line of the baked command (default #!$SHELL)")
	flags.BoolVarP(&listFlag, "list", "l", false, "List all baked commands")
	flags.BoolVarP(&listVerbose, "verbose", "V", false, "With --list: show paths, modification times and duplicates")
	flags.StringVar(&listFilter, "filter", "", "With --list: only show names matching a glob pattern")
	flags.StringVar(&listFormat, "format", "text", "With --list: output format (text, json, yaml)")
	flags.StringVarP(&deleteName, "delete", "d", "", "Delete a baked command")
	flags.StringVarP(&editName, "edit", "e", "", "Edit a baked command")
	flags.StringVarP(&viewName, "view", "w", "", "View the fields of a baked command")
	flags.BoolVarP(&printFlag, "print", "p", false, "Print the commands directory")
	flags.StringVarP(&mainPath, "main", "m", "", "Change the commands directory")
	flags.BoolVarP(&configFlag, "config", "c", false, "Redo the setup process")
	flags.BoolVarP(&updateFlag, "update", "u", false, "Check for a newer version and update")
	flags.BoolVarP(&forceFlag, "force-update", "F", false, "Update without checking the version")
	flags.StringVarP(&intoName, "into", "n", "", "Open a shell in the directory of a command's script")
	flags.StringVarP(&editScriptName, "edit-script", "E", "", "Open a command's script in $EDITOR")
	flags.BoolVarP(&versionFlag, "version", "v", false, "Print the current version")

	rootCmd.PersistentFlags().StringVar(&configDir, "dir", "", "Use a different data directory (default ~/.cmd-baker)")

	rootCmd.MarkFlagsMutuallyExclusive(actionFlags...)
}

func actionRequested(cmd *cobra.Command) bool {
	for _, name := range actionFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// validateArgs 在访问磁盘之前检查参数组合
func validateArgs(cmd *cobra.Command, args []string) error {
	i18n.Init("")

	switch listFormat {
	case "text", "json", "yaml":
	default:
		return errors.New(i18n.T("error.invalid_format", listFormat))
	}

	if actionRequested(cmd) {
		if len(args) > 0 {
			cmd.PrintErrln(i18n.T("error.positional_with_action"))
			_ = cmd.Usage()
			return errUsage
		}
		return nil
	}

	if len(args) != 2 {
		_ = cmd.Usage()
		return errUsage
	}
	return nil
}

// dispatch 执行唯一的一个动作
func (a *app) dispatch(ctx context.Context, cmd *cobra.Command, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	switch {
	case cmd.Flags().Changed("into"):
		a.into(ctx, intoName)
	case cmd.Flags().Changed("edit-script"):
		a.editScript(ctx, editScriptName)
	case cmd.Flags().Changed("main"):
		a.changeMainPath(mainPath)
	case cmd.Flags().Changed("update"):
		a.update(ctx)
	case cmd.Flags().Changed("force-update"):
		a.forceUpdate(ctx)
	case cmd.Flags().Changed("list"):
		a.list(listFilter, listFormat, listVerbose)
	case cmd.Flags().Changed("delete"):
		a.delete(deleteName)
	case cmd.Flags().Changed("edit"):
		a.edit(editName)
	case cmd.Flags().Changed("view"):
		a.view(viewName)
	case cmd.Flags().Changed("config"):
		a.redoSetup()
	case cmd.Flags().Changed("print"):
		a.printMainPath()
	case cmd.Flags().Changed("version"):
		a.printVersion()
	default:
		a.bake(args[0], args[1], shebang, interpreter)
	}

	return nil
}
