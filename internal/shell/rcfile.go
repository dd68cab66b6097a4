package shell

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/YangQing-Lin/cmd-baker/internal/logging"
	"github.com/spf13/afero"
	"mvdan.cc/sh/v3/syntax"
)

// Exporter 把目录追加到 shell rc 文件的 PATH 中
type Exporter struct {
	fs     afero.Fs
	rcPath string
}

// NewExporter 创建 Exporter
func NewExporter(fs afero.Fs, rcPath string) *Exporter {
	return &Exporter{fs: fs, rcPath: rcPath}
}

// RCPath 返回 rc 文件路径
func (e *Exporter) RCPath() string {
	return e.rcPath
}

// dqEscaper 转义双引号内有特殊含义的字符
var dqEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")

// ExportLine 返回追加到 rc 文件的行，目录放在双引号内
func ExportLine(dir string) string {
	return fmt.Sprintf("export PATH=\"$PATH:%s\"\n", dqEscaper.Replace(dir))
}

// legacyExportLine 旧版本写入的不带引号的行
func legacyExportLine(dir string) string {
	return "export PATH=$PATH:" + dir
}

// hasExportLine 按整行查找本工具写入过的 export 行
func hasExportLine(rc []byte, dir string) bool {
	quoted := strings.TrimSuffix(ExportLine(dir), "\n")
	legacy := legacyExportLine(dir)
	for _, line := range strings.Split(string(rc), "\n") {
		line = strings.TrimSpace(line)
		if line == quoted || line == legacy {
			return true
		}
	}
	return false
}

// Export 幂等地追加 export 行；已存在时返回 false
func (e *Exporter) Export(dir string) (bool, error) {
	data, err := afero.ReadFile(e.fs, e.rcPath)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("读取 %s 失败: %w", e.rcPath, err)
	}

	if HasPathEntry(data, dir) {
		return false, nil
	}

	if err := e.fs.MkdirAll(filepath.Dir(e.rcPath), 0755); err != nil {
		return false, fmt.Errorf("创建目录失败: %w", err)
	}

	f, err := e.fs.OpenFile(e.rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("打开 %s 失败: %w", e.rcPath, err)
	}
	defer f.Close()

	line := ExportLine(dir)
	if len(data) > 0 && !bytes.HasSuffix(data, []byte("\n")) {
		line = "\n" + line
	}

	if _, err := f.WriteString(line); err != nil {
		return false, fmt.Errorf("写入 %s 失败: %w", e.rcPath, err)
	}

	logging.Logger.Debug().Str("rc", e.rcPath).Str("dir", dir).Msg("path exported")
	return true, nil
}

// HasPathEntry 检查 rc 内容是否已把 dir 加入 PATH。
// 先按整行查找写入过的 export 行（含旧版不带引号的格式），再解析 PATH 赋值。
func HasPathEntry(rc []byte, dir string) bool {
	if hasExportLine(rc, dir) {
		return true
	}

	parser := syntax.NewParser(syntax.Variant(syntax.LangBash), syntax.KeepComments(false))
	file, err := parser.Parse(bytes.NewReader(rc), "")
	if err != nil {
		return false
	}

	want := filepath.Clean(dir)
	found := false
	syntax.Walk(file, func(node syntax.Node) bool {
		if found {
			return false
		}
		switch n := node.(type) {
		case *syntax.DeclClause:
			if n.Variant != nil && n.Variant.Value == "export" {
				found = anyAssignsPath(n.Args, want)
			}
		case *syntax.CallExpr:
			found = anyAssignsPath(n.Assigns, want)
		}
		return !found
	})

	return found
}

func anyAssignsPath(assigns []*syntax.Assign, want string) bool {
	for _, as := range assigns {
		if as.Name == nil || as.Name.Value != "PATH" || as.Value == nil {
			continue
		}
		for _, part := range strings.Split(wordToString(as.Value), ":") {
			if part != "" && filepath.Clean(part) == want {
				return true
			}
		}
	}
	return false
}

// wordToString 拼接字面量部分，变量展开保留为 $NAME
func wordToString(word *syntax.Word) string {
	var sb strings.Builder
	for _, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			sb.WriteString(p.Value)
		case *syntax.SglQuoted:
			sb.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, qp := range p.Parts {
				switch q := qp.(type) {
				case *syntax.Lit:
					sb.WriteString(q.Value)
				case *syntax.ParamExp:
					if q.Param != nil {
						sb.WriteString("$" + q.Param.Value)
					}
				}
			}
		case *syntax.ParamExp:
			if p.Param != nil {
				sb.WriteString("$" + p.Param.Value)
			}
		}
	}
	return sb.String()
}
