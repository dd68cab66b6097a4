package i18n

import (
	"fmt"
	"os"
	"strings"
)

// EnvLanguage 覆盖配置中的语言
const EnvLanguage = "CMD_BAKER_LANG"

const defaultLanguage = "en"

var currentLanguage = defaultLanguage

// Message 多语言消息定义
var messages = map[string]map[string]string{
	"en": {
		// Startup
		"notice.baking_self":       "Baking self...",
		"notice.bake_ready":        "You can now use the 'bake' command!",
		"notice.baked_path":        "Baked path: %s",
		"notice.path_exported":     "Added %s to PATH in %s, open a new shell to pick it up",
		"warning.old_version":      "You are on an old version of bake.",
		"notice.deleting_old_bake": "Deleting old bake file.",
		"notice.old_bake_deleted":  "Successfully deleted old bake command.",
		"notice.delete_manually":   "You can delete it manually located at: %s",
		"error.delete_old_bake":    "An error occurred deleting the old bake file: %v",
		"error.cannot_create_base": "Cannot create base directory: %v",
		"error.config_unavailable": "Configuration unavailable: %v",
		"error.write_config":       "Failed to write config: %v",
		"error.export_failed":      "Failed to update shell config: %v",
		"error.self_bake":          "Failed to bake self: %v",
		"error.setup_aborted":      "Setup aborted",
		"error.migration_loop":     "Configuration is still missing its version after migration",

		// Setup prompts
		"prompt.main_path":        "Where should baked commands live? ",
		"error.path_required":     "Path does not exist please enter a valid path.",
		"error.cannot_create_dir": "Cannot create directory: %v",

		// Commands
		"cmd.baked":                "Baked '%s'",
		"error.reserved_name":      "Command name cannot be 'bake'",
		"error.command_exists":     "Command '%s' already exists",
		"error.command_not_found":  "Command '%s' does not exist",
		"error.invalid_name":       "Invalid command name: %v",
		"error.invalid_recipe":     "Invalid command: %v",
		"error.malformed":          "Command '%s' is not a baked command: %v",
		"notice.did_you_mean":      "Did you mean '%s'?",
		"warning.source_missing":   "Source '%s' does not exist",
		"error.create_failed":      "Failed to create command: %v",
		"error.read_failed":        "Failed to read command: %v",
		"error.edit_failed":        "Failed to edit command: %v",
		"error.delete_failed":      "Failed to delete command: %v",
		"error.list_failed":        "Failed to list commands: %v",
		"error.stale_copy":         "Both '%s' and '%s' exist now, delete '%s' manually",
		"notice.deleted":           "Deleted '%s'",
		"notice.edited":            "Edited '%s'",
		"notice.renamed":           "Renamed '%s' to '%s'",
		"notice.no_commands":       "No baked commands yet.",
		"warning.duplicates":       "Identical commands: %s",
		"warning.unreadable":       "Skipped unreadable command: %v",
		"prompt.edit_name":         "Command name (leave empty for same one): ",
		"prompt.edit_shebang":      "Shebang (leave empty for same one): ",
		"prompt.edit_interpreter":  "Interpreter (leave empty for same one): ",
		"prompt.edit_source":       "Source (leave empty for same one): ",
		"error.prompt_failed":      "Failed to read input: %v",
		"error.into_failed":        "An error occurred changing directories: %v",
		"error.editor_failed":      "Failed to open editor: %v",
		"error.path_not_exist":     "Path '%s' does not exist",
		"notice.main_path_changed": "Main path changed to %s",

		// Config / update / version
		"confirm.redo_setup":     "Are you sure you want to redo setup?",
		"notice.config_removed":  "Configuration removed, run cmd-baker again to set it up",
		"notice.config_backup":   "Backup saved to %s",
		"confirm.update":         "An update is available do you want to update?",
		"notice.no_update":       "No update available.",
		"notice.latest_unknown":  "Could not determine the latest version.",
		"notice.updating":        "Updating...",
		"notice.updated":         "Updated to %s",
		"error.update_failed":    "Update failed: %v",
		"notice.version":         "%s",
		"notice.build":           "build %s (%s) %s",
		"notice.update_disabled": "Self-update is disabled in this build, reinstall with go install to update.",

		// Usage
		"error.invalid_format":         "Unsupported output format: %s (choose text, json or yaml)",
		"error.positional_with_action": "Positional arguments cannot be combined with an action flag",
	},
	"zh": {
		// Startup
		"notice.baking_self":       "正在安装 bake 命令...",
		"notice.bake_ready":        "现在可以使用 'bake' 命令了！",
		"notice.baked_path":        "命令目录: %s",
		"notice.path_exported":     "已将 %s 加入 %s 中的 PATH，新开 shell 后生效",
		"warning.old_version":      "当前 bake 版本过旧。",
		"notice.deleting_old_bake": "正在删除旧的 bake 文件。",
		"notice.old_bake_deleted":  "旧的 bake 命令已删除。",
		"notice.delete_manually":   "可以手动删除该文件: %s",
		"error.delete_old_bake":    "删除旧的 bake 文件失败: %v",
		"error.cannot_create_base": "无法创建基础目录: %v",
		"error.config_unavailable": "配置不可用: %v",
		"error.write_config":       "写入配置失败: %v",
		"error.export_failed":      "更新 shell 配置失败: %v",
		"error.self_bake":          "安装 bake 命令失败: %v",
		"error.setup_aborted":      "已取消初始化",
		"error.migration_loop":     "迁移后配置中仍缺少版本号",

		// Setup prompts
		"prompt.main_path":        "请输入存放命令的目录: ",
		"error.path_required":     "路径无效，请重新输入。",
		"error.cannot_create_dir": "无法创建目录: %v",

		// Commands
		"cmd.baked":                "已生成 '%s'",
		"error.reserved_name":      "命令名不能是 'bake'",
		"error.command_exists":     "命令 '%s' 已存在",
		"error.command_not_found":  "命令 '%s' 不存在",
		"error.invalid_name":       "命令名无效: %v",
		"error.invalid_recipe":     "命令无效: %v",
		"error.malformed":          "'%s' 不是生成的命令: %v",
		"notice.did_you_mean":      "是否要找 '%s'？",
		"warning.source_missing":   "脚本 '%s' 不存在",
		"error.create_failed":      "创建命令失败: %v",
		"error.read_failed":        "读取命令失败: %v",
		"error.edit_failed":        "编辑命令失败: %v",
		"error.delete_failed":      "删除命令失败: %v",
		"error.list_failed":        "列出命令失败: %v",
		"error.stale_copy":         "'%s' 与 '%s' 同时存在，请手动删除 '%s'",
		"notice.deleted":           "已删除 '%s'",
		"notice.edited":            "已更新 '%s'",
		"notice.renamed":           "已将 '%s' 重命名为 '%s'",
		"notice.no_commands":       "还没有任何命令。",
		"warning.duplicates":       "内容相同的命令: %s",
		"warning.unreadable":       "跳过无法解析的命令: %v",
		"prompt.edit_name":         "命令名（留空保持不变）: ",
		"prompt.edit_shebang":      "Shebang（留空保持不变）: ",
		"prompt.edit_interpreter":  "解释器（留空保持不变）: ",
		"prompt.edit_source":       "脚本路径（留空保持不变）: ",
		"error.prompt_failed":      "读取输入失败: %v",
		"error.into_failed":        "切换目录失败: %v",
		"error.editor_failed":      "打开编辑器失败: %v",
		"error.path_not_exist":     "路径 '%s' 不存在",
		"notice.main_path_changed": "命令目录已改为 %s",

		// Config / update / version
		"confirm.redo_setup":     "确定要重新初始化吗？",
		"notice.config_removed":  "配置已删除，再次运行 cmd-baker 重新初始化",
		"notice.config_backup":   "备份已保存到 %s",
		"confirm.update":         "有可用更新，是否现在更新？",
		"notice.no_update":       "已是最新版本。",
		"notice.latest_unknown":  "无法获取最新版本。",
		"notice.updating":        "正在更新...",
		"notice.updated":         "已更新到 %s",
		"error.update_failed":    "更新失败: %v",
		"notice.version":         "%s",
		"notice.build":           "构建 %s (%s) %s",
		"notice.update_disabled": "本构建已禁用自更新，请使用 go install 重新安装。",

		// Usage
		"error.invalid_format":         "不支持的输出格式: %s（可选 text, json, yaml）",
		"error.positional_with_action": "位置参数不能与动作参数同时使用",
	},
}

// Init 初始化语言：环境变量优先，其次为配置中的语言
func Init(configured string) {
	currentLanguage = defaultLanguage
	SetLanguage(configured)
	if env := os.Getenv(EnvLanguage); env != "" {
		SetLanguage(env)
	}
}

// Supported 是否为支持的语言
func Supported(lang string) bool {
	_, ok := messages[normalize(lang)]
	return ok
}

func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	// zh_CN.UTF-8 / en-US
	if i := strings.IndexAny(lang, "_-."); i > 0 {
		lang = lang[:i]
	}
	return lang
}

// SetLanguage 设置当前语言，不支持的语言被忽略
func SetLanguage(lang string) {
	lang = normalize(lang)
	if _, ok := messages[lang]; ok {
		currentLanguage = lang
	}
}

// GetLanguage 获取当前语言
func GetLanguage() string {
	return currentLanguage
}

// T 翻译消息 (Translation)
func T(key string, args ...interface{}) string {
	langMessages, ok := messages[currentLanguage]
	if !ok {
		langMessages = messages[defaultLanguage]
	}

	msg, ok := langMessages[key]
	if !ok {
		return key // 如果找不到翻译，返回 key 本身
	}

	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}

	return msg
}
