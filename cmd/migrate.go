package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/YangQing-Lin/cmd-baker/internal/config"
	"github.com/YangQing-Lin/cmd-baker/internal/logging"
	"github.com/YangQing-Lin/cmd-baker/internal/version"
	"github.com/hashicorp/go-multierror"
)

// migrate 处理没有 version 键的旧安装：删除旧的 bake 文件并写入版本号。
// 调用方在成功后重新执行启动流程。
func (a *app) migrate() error {
	a.warnf("warning.old_version")
	a.noticef("notice.deleting_old_bake")

	record := a.store.Get()
	stale := []string{config.SelfBakePath(a.baseDir)}
	if record.MainPath != "" {
		if p := filepath.Join(record.MainPath, config.SelfBakeName); p != stale[0] {
			stale = append(stale, p)
		}
	}

	var result *multierror.Error
	for _, path := range stale {
		if err := a.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			result = multierror.Append(result, err)
			a.noticef("notice.delete_manually", path)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		a.errorf("error.delete_old_bake", err)
		return err
	}

	a.noticef("notice.old_bake_deleted")

	if err := a.store.Set(config.KeyVersion, version.Version); err != nil {
		a.errorf("error.write_config", err)
		return err
	}

	logging.Logger.Debug().Strs("removed", stale).Msg("stale installation migrated")
	return nil
}
