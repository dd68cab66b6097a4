package cmd

import (
	"errors"
	"io"
	"strings"

	"github.com/YangQing-Lin/cmd-baker/internal/baker"
	"github.com/YangQing-Lin/cmd-baker/internal/console"
	"github.com/YangQing-Lin/cmd-baker/internal/i18n"
)

// editPrompts 交互式编辑的提问顺序
var editPrompts = []string{
	"prompt.edit_name",
	"prompt.edit_shebang",
	"prompt.edit_interpreter",
	"prompt.edit_source",
}

// edit 先确认命令可以解析，显示当前内容，依次询问名称、shebang、解释器、脚本路径，留空保持不变
func (a *app) edit(name string) {
	name = baker.NormalizeName(name)
	if _, err := a.handler.Read(name); err != nil {
		a.reportCommandError(err, name, "error.edit_failed")
		return
	}
	content, err := a.handler.Content(name)
	if err != nil {
		a.reportCommandError(err, name, "error.edit_failed")
		return
	}
	a.console.Println(content)

	answers := make([]*string, len(editPrompts))
	for i, key := range editPrompts {
		answer, err := a.prompter.Prompt(i18n.T(key))
		if err != nil {
			if errors.Is(err, console.ErrAborted) {
				return
			}
			if errors.Is(err, io.EOF) {
				break
			}
			a.errorf("error.prompt_failed", err)
			return
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			answers[i] = &answer
		}
	}

	patch := baker.Patch{
		Name:        answers[0],
		Shebang:     answers[1],
		Interpreter: answers[2],
		Source:      answers[3],
	}

	result, err := a.handler.Edit(name, patch)
	if err != nil {
		switch {
		case errors.Is(err, baker.ErrStaleCopy):
			a.errorf("error.stale_copy", result.OldName, result.Name, result.OldName)
		case errors.Is(err, baker.ErrAlreadyExists) && result.Renamed:
			a.reportCommandError(err, result.Name, "error.edit_failed")
		default:
			a.reportCommandError(err, name, "error.edit_failed")
		}
		return
	}

	if result.Renamed {
		a.noticef("notice.renamed", result.OldName, result.Name)
		return
	}
	a.noticef("notice.edited", result.Name)
}
