package cmd

import "github.com/YangQing-Lin/cmd-baker/internal/version"

// printVersion 输出配置中记录的版本与构建信息
func (a *app) printVersion() {
	a.noticef("notice.version", a.store.Get().Version.String())
	a.noticef("notice.build", version.GetVersion(), version.GetGitCommit(), version.GetBuildDate())
}
