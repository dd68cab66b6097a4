package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/YangQing-Lin/cmd-baker/internal/portable"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
)

const (
	// EnvBaseDir 覆盖数据目录的环境变量
	EnvBaseDir = "CMD_BAKER_DIR"
	// BaseDirName 用户主目录下的数据目录名
	BaseDirName = ".cmd-baker"
	// ConfigFileName 配置文件名
	ConfigFileName = "config.json"
	// SelfBakeName 自安装命令名，用户不可使用
	SelfBakeName = "bake"
)

// BaseDir 返回数据目录
// 优先级：override 参数 > CMD_BAKER_DIR 环境变量 > 便携版目录 > ~/.cmd-baker
func BaseDir(fs afero.Fs, override string) (string, error) {
	if override != "" {
		return expandPath(override)
	}

	if dir := os.Getenv(EnvBaseDir); dir != "" {
		return expandPath(dir)
	}

	if portable.IsPortableMode(fs) {
		dir, err := portable.GetPortableBaseDir()
		if err != nil {
			return "", fmt.Errorf("获取便携版数据目录失败: %w", err)
		}
		return dir, nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("获取用户主目录失败: %w", err)
	}

	return filepath.Join(home, BaseDirName), nil
}

// ConfigPath 返回配置文件路径
func ConfigPath(baseDir string) string {
	return filepath.Join(baseDir, ConfigFileName)
}

// SelfBakePath 返回自安装 bake 命令的路径
func SelfBakePath(baseDir string) string {
	return filepath.Join(baseDir, SelfBakeName)
}

// ExpandPath 展开 ~ 并转换为绝对路径
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("展开路径失败: %w", err)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("解析绝对路径失败: %w", err)
	}

	return abs, nil
}
