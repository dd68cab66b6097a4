package cmd

import (
	"context"

	"github.com/YangQing-Lin/cmd-baker/internal/config"
	"github.com/YangQing-Lin/cmd-baker/internal/console"
	"github.com/YangQing-Lin/cmd-baker/internal/i18n"
	"github.com/YangQing-Lin/cmd-baker/internal/logging"
	"github.com/YangQing-Lin/cmd-baker/internal/version"
)

// update 有新版本时确认（默认是）后更新
func (a *app) update(ctx context.Context) {
	if !selfUpdateEnabledFunc() {
		a.noticef("notice.update_disabled")
		return
	}

	latest := fetchLatestFunc()
	if latest == version.Unknown {
		a.noticef("notice.latest_unknown")
		return
	}

	current := a.store.Get().Version.String()
	newer, err := version.IsNewer(latest, current)
	if err != nil {
		logging.Logger.Debug().Err(err).Str("latest", latest).Str("current", current).Msg("version compare failed")
		a.noticef("notice.latest_unknown")
		return
	}
	if !newer {
		a.noticef("notice.no_update")
		return
	}

	ok, err := console.Confirm(a.prompter, a.console.Tag(console.Notice)+" "+i18n.T("confirm.update"), console.DefaultYes)
	if err != nil {
		a.errorf("error.prompt_failed", err)
		return
	}
	if ok {
		a.runUpdate(ctx, latest)
	}
}

// forceUpdate 不比较版本直接更新
func (a *app) forceUpdate(ctx context.Context) {
	if !selfUpdateEnabledFunc() {
		a.noticef("notice.update_disabled")
		return
	}

	a.runUpdate(ctx, fetchLatestFunc())
}

func (a *app) runUpdate(ctx context.Context, latest string) {
	a.noticef("notice.updating")

	if err := runUpdateFunc(ctx, a.console.Out()); err != nil {
		a.errorf("error.update_failed", err)
		return
	}

	if latest == version.Unknown {
		return
	}
	if err := a.store.Set(config.KeyVersion, latest); err != nil {
		a.errorf("error.write_config", err)
		return
	}
	a.noticef("notice.updated", latest)
}
