// Package console renders cmd-baker's tagged output ("[notice] ...") and reads
// answers from the user.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// MessageType 输出标签类型
type MessageType int

const (
	Error MessageType = iota
	Notice
	Cmd
	Warning
	Baked
	Shebang
	Interpreter
	Path
	Symbol
)

// fieldWidth 查看命令时标签列的宽度
const fieldWidth = 14

var tagStyles = map[MessageType]struct {
	name string
	attr color.Attribute
}{
	Error:       {"error", color.FgRed},
	Notice:      {"notice", color.FgBlue},
	Cmd:         {"cmd", color.FgGreen},
	Warning:     {"warning", color.FgYellow},
	Baked:       {"baked", color.FgGreen},
	Shebang:     {"shebang", color.FgRed},
	Interpreter: {"interpreter", color.FgYellow},
	Path:        {"path", color.FgGreen},
	Symbol:      {"symbol", color.FgBlue},
}

func (t MessageType) String() string {
	if s, ok := tagStyles[t]; ok {
		return s.name
	}
	return fmt.Sprintf("MessageType(%d)", int(t))
}

// Console 带标签的输出
type Console struct {
	out     io.Writer
	colored bool
}

// New 创建 Console，仅当 out 是终端且未设置 NO_COLOR 时输出颜色
func New(out io.Writer) *Console {
	return &Console{out: out, colored: ColorEnabled(out)}
}

// NewPlain 创建不带颜色的 Console
func NewPlain(out io.Writer) *Console {
	return &Console{out: out}
}

// ColorEnabled 判断写入 w 时是否使用颜色
func ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Out 返回底层 writer
func (c *Console) Out() io.Writer {
	return c.out
}

// Tag 返回 "[name]"，可能带颜色
func (c *Console) Tag(t MessageType) string {
	name := t.String()
	if c.colored {
		if s, ok := tagStyles[t]; ok {
			col := color.New(s.attr)
			col.EnableColor()
			name = col.Sprint(name)
		}
	}
	return "[" + name + "]"
}

// Print 输出一行带标签的消息
func (c *Console) Print(t MessageType, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	fmt.Fprintf(c.out, "%s %s\n", c.Tag(t), msg)
}

// Println 输出不带标签的一行
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Field 输出对齐的 "标签 值"
func (c *Console) Field(t MessageType, value string) {
	label := lipgloss.NewStyle().Width(fieldWidth).Render(c.Tag(t))
	fmt.Fprintf(c.out, "%s %s\n", label, value)
}

// Columns 按列对齐输出，最后一列不补空格
func (c *Console) Columns(rows [][]string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				cells[i] = cell
				continue
			}
			cells[i] = lipgloss.NewStyle().Width(widths[i]).Render(cell)
		}
		fmt.Fprintln(c.out, strings.Join(cells, "  "))
	}
}
