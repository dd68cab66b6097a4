//go:build !no_self_update

package version

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

var execCommandContext = exec.CommandContext

// SelfUpdateEnabled 指示当前构建是否启用自更新能力
func SelfUpdateEnabled() bool { return true }

// Update 通过 go install 安装最新版本，输出写入 out
func Update(ctx context.Context, out io.Writer) error {
	cmd := execCommandContext(ctx, "go", "install", modulePath+"@latest")
	cmd.Stdout = out
	cmd.Stderr = out

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("go install 退出码 %d", exitErr.ExitCode())
		}
		return fmt.Errorf("执行 go install 失败: %w", err)
	}
	return nil
}
