package cmd

import "github.com/YangQing-Lin/cmd-baker/internal/baker"

// delete 删除命令，不需要确认
func (a *app) delete(name string) {
	name = baker.NormalizeName(name)
	if err := a.handler.Delete(name); err != nil {
		a.reportCommandError(err, name, "error.delete_failed")
		return
	}

	a.noticef("notice.deleted", name)
}
