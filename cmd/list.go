package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/YangQing-Lin/cmd-baker/internal/console"
	"github.com/YangQing-Lin/cmd-baker/internal/logging"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// list 列出命令；verbose 时附带路径、修改时间与重复命令检查
func (a *app) list(filter, format string, verbose bool) {
	entries, err := a.handler.List(filter)
	if err != nil {
		a.errorf("error.list_failed", err)
		return
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			a.errorf("error.list_failed", err)
			return
		}
		fmt.Fprintln(a.console.Out(), string(data))
		return
	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			a.errorf("error.list_failed", err)
			return
		}
		fmt.Fprint(a.console.Out(), string(data))
		return
	}

	if len(entries) == 0 {
		a.noticef("notice.no_commands")
		return
	}

	if !verbose {
		for _, entry := range entries {
			a.console.Print(console.Cmd, entry.Name)
		}
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			a.console.Tag(console.Cmd) + " " + entry.Name,
			entry.Path,
			entry.ModTime.Format(time.DateTime),
		})
	}
	a.console.Columns(rows)

	a.reportDuplicates()
}

func (a *app) reportDuplicates() {
	dups, err := a.handler.Duplicates()
	for _, group := range dups {
		a.warnf("warning.duplicates", strings.Join(group, ", "))
	}

	if err == nil {
		return
	}
	if merr, ok := err.(*multierror.Error); ok {
		for _, e := range merr.Errors {
			a.warnf("warning.unreadable", e)
		}
		return
	}
	logging.Logger.Debug().Err(err).Msg("duplicate scan failed")
	a.errorf("error.list_failed", err)
}
