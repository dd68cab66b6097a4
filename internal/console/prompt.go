package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// ErrAborted 用户按下 Ctrl+C
var ErrAborted = errors.New("aborted")

// Prompter 逐行读取用户输入
type Prompter interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// ReaderPrompter 从任意 reader 读取，用于管道输入和测试
type ReaderPrompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewReaderPrompter 创建 ReaderPrompter，提示语写入 w
func NewReaderPrompter(r io.Reader, w io.Writer) *ReaderPrompter {
	return &ReaderPrompter{r: bufio.NewReader(r), w: w}
}

// Prompt 输出提示并读取一行，不含换行符
func (p *ReaderPrompter) Prompt(prompt string) (string, error) {
	fmt.Fprint(p.w, prompt)

	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Close 无操作
func (p *ReaderPrompter) Close() error {
	return nil
}

// LinePrompter 交互式终端下使用 liner，支持行编辑
type LinePrompter struct {
	state *liner.State
}

// NewLinePrompter 接管终端，调用方必须 Close
func NewLinePrompter() *LinePrompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &LinePrompter{state: state}
}

// Prompt 读取一行，Ctrl+C 返回 ErrAborted
func (p *LinePrompter) Prompt(prompt string) (string, error) {
	line, err := p.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrAborted
	}
	return line, err
}

// Close 恢复终端状态
func (p *LinePrompter) Close() error {
	return p.state.Close()
}

// NewPrompter in 为终端时使用 LinePrompter，否则使用 ReaderPrompter
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && f == os.Stdin && term.IsTerminal(int(f.Fd())) && liner.TerminalSupported() {
		return NewLinePrompter()
	}
	return NewReaderPrompter(in, out)
}

// Default 确认提示的默认答案
type Default int

const (
	DefaultNone Default = iota
	DefaultYes
	DefaultNo
)

func (d Default) suffix() string {
	switch d {
	case DefaultYes:
		return " [Y/n] "
	case DefaultNo:
		return " [y/N] "
	default:
		return " [y/n] "
	}
}

// Confirm 询问是/否。直接回车返回默认值（无默认值时重新询问），
// 输入结束时返回默认值（无默认值时为 false），被中断时返回 false。
func Confirm(p Prompter, prompt string, def Default) (bool, error) {
	for {
		answer, err := p.Prompt(prompt + def.suffix())
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				return def == DefaultYes, nil
			case errors.Is(err, ErrAborted):
				return false, nil
			}
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			if def != DefaultNone {
				return def == DefaultYes, nil
			}
		}
	}
}
