package baker

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/YangQing-Lin/cmd-baker/internal/shell"
)

const (
	// DefaultInterpreter 未指定解释器时使用
	DefaultInterpreter = "python3"
	// ArgsPlaceholder 转发所有调用参数
	ArgsPlaceholder = "$@"
)

// Recipe 一个 baked command 的三个字段
type Recipe struct {
	Shebang     string `json:"shebang" yaml:"shebang"`
	Interpreter string `json:"interpreter" yaml:"interpreter"`
	Source      string `json:"source" yaml:"source"`
}

// Patch 编辑时的可选字段，nil 表示保持原值
type Patch struct {
	Name        *string
	Shebang     *string
	Interpreter *string
	Source      *string
}

// NewRecipe 填充默认值：shebang 取当前 shell，解释器取 python3
func NewRecipe(source, shebang, interpreter string) Recipe {
	if shebang == "" {
		shebang = shell.DefaultShebang()
	}
	if interpreter == "" {
		interpreter = DefaultInterpreter
	}

	return Recipe{
		Shebang:     shebang,
		Interpreter: interpreter,
		Source:      source,
	}
}

// Bake 生成命令文件内容
func Bake(source, shebang, interpreter string) string {
	return NewRecipe(source, shebang, interpreter).Bake()
}

// Bake 生成两行内容：shebang 与 "<interpreter> <source> $@"，无结尾换行
func (r Recipe) Bake() string {
	return r.Shebang + "\n" + strings.Join([]string{r.Interpreter, r.Source, ArgsPlaceholder}, " ")
}

// Apply 返回应用补丁后的新 Recipe
func (r Recipe) Apply(p Patch) Recipe {
	if p.Shebang != nil {
		r.Shebang = *p.Shebang
	}
	if p.Interpreter != nil {
		r.Interpreter = *p.Interpreter
	}
	if p.Source != nil {
		r.Source = *p.Source
	}
	return r
}

// Validate 确保 Bake 的结果可以被 Decode 原样还原
func (r Recipe) Validate() error {
	if !strings.HasPrefix(r.Shebang, "#!") || len(r.Shebang) == 2 {
		return fmt.Errorf("%w: shebang must start with #! and name a program: %q", ErrInvalidRecipe, r.Shebang)
	}
	if strings.ContainsAny(r.Shebang, "\r\n") || strings.TrimSpace(r.Shebang) != r.Shebang {
		return fmt.Errorf("%w: shebang must be a single trimmed line: %q", ErrInvalidRecipe, r.Shebang)
	}
	if err := validateToken("interpreter", r.Interpreter); err != nil {
		return err
	}
	return validateToken("source", r.Source)
}

func validateToken(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidRecipe, field)
	}
	if strings.ContainsFunc(value, unicode.IsSpace) {
		return fmt.Errorf("%w: %s must not contain whitespace: %q", ErrInvalidRecipe, field, value)
	}
	return nil
}

// Decode 解析命令文件内容，返回 Recipe 与参数占位符
func Decode(content string) (Recipe, string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(content, " \t\n"), "\n")
	if len(lines) != 2 {
		return Recipe{}, "", fmt.Errorf("%w: expected 2 lines, got %d", ErrMalformedContent, len(lines))
	}

	shebang := strings.TrimSpace(lines[0])
	if !strings.HasPrefix(shebang, "#!") {
		return Recipe{}, "", fmt.Errorf("%w: first line is not a shebang: %q", ErrMalformedContent, shebang)
	}

	tokens := strings.Fields(lines[1])
	if len(tokens) < 3 {
		return Recipe{}, "", fmt.Errorf("%w: expected interpreter, source and placeholder, got %q", ErrMalformedContent, lines[1])
	}

	return Recipe{
		Shebang:     shebang,
		Interpreter: tokens[0],
		Source:      tokens[1],
	}, tokens[2], nil
}
