//go:build no_self_update

package version

import (
	"context"
	"fmt"
	"io"
)

// SelfUpdateEnabled 指示当前构建是否启用自更新能力
func SelfUpdateEnabled() bool { return false }

// Update 在禁用自更新的构建中不可用
func Update(_ context.Context, _ io.Writer) error {
	return fmt.Errorf("自更新在本构建中已禁用，请手动执行 go install %s@latest", modulePath)
}
