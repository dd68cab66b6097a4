package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// FallbackShebang 无法确定当前 shell 时使用
const FallbackShebang = "#!/bin/zsh"

// CurrentShellPath 返回当前 shell 的完整路径
func CurrentShellPath() string {
	return os.Getenv("SHELL")
}

// CurrentShellName 返回当前 shell 的名称，例如 bash、zsh
func CurrentShellName() string {
	path := CurrentShellPath()
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

// DefaultShebang 以当前 shell 生成 shebang
func DefaultShebang() string {
	path := CurrentShellPath()
	if path == "" || !filepath.IsAbs(path) {
		return FallbackShebang
	}
	return "#!" + path
}

// RCFile 返回当前 shell 的 rc 文件路径，未知 shell 时使用 ~/.profile
func RCFile(home string) string {
	name := CurrentShellName()
	if name == "" {
		return filepath.Join(home, ".profile")
	}
	return filepath.Join(home, "."+name+"rc")
}

var execCommandContext = exec.CommandContext

// SpawnIn 在 dir 中启动交互式 shell，shell 退出后返回
func SpawnIn(ctx context.Context, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("目录不可用: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("不是目录: %s", dir)
	}

	shellPath := CurrentShellPath()
	if shellPath == "" {
		shellPath = "/bin/sh"
	}

	return runAttached(ctx, dir, shellPath)
}

// OpenEditor 用 $VISUAL / $EDITOR（默认 vi）打开文件
func OpenEditor(ctx context.Context, path string) error {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		parts = []string{"vi"}
	}

	return runAttached(ctx, "", parts[0], append(parts[1:], path)...)
}

func runAttached(ctx context.Context, dir, name string, args ...string) error {
	cmd := execCommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s 退出码 %d", name, exitErr.ExitCode())
		}
		return fmt.Errorf("启动 %s 失败: %w", name, err)
	}

	return nil
}
