// Package baker owns the directory of baked commands: the two-line shim
// format, and create/read/edit/delete/list over the files in that directory.
// Every operation goes back to disk; nothing is cached.
package baker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/YangQing-Lin/cmd-baker/internal/logging"
	"github.com/YangQing-Lin/cmd-baker/internal/utils"
	"github.com/spf13/afero"
)

const (
	// ReservedName 自安装命令的名称
	ReservedName = "bake"
	// ExecMode 命令文件权限
	ExecMode os.FileMode = 0o755
)

// Command 从磁盘读取并解析后的命令
type Command struct {
	Name   string
	Path   string
	Recipe Recipe
	Symbol string
}

// EditResult 编辑结果
type EditResult struct {
	OldName string
	Name    string
	Recipe  Recipe
	Renamed bool
}

// Handler 命令目录的唯一读写者
type Handler struct {
	fs  afero.Fs
	dir string
}

// New 创建 Handler，dir 为配置中的 main_path
func New(fs afero.Fs, dir string) *Handler {
	return &Handler{fs: fs, dir: dir}
}

// Dir 返回命令目录
func (h *Handler) Dir() string {
	return h.dir
}

// Path 拼接命令文件路径，不访问磁盘
func (h *Handler) Path(name string) string {
	return filepath.Join(h.dir, name)
}

// Exists 按路径检查命令是否存在
func (h *Handler) Exists(name string) bool {
	return utils.FileExists(h.fs, h.Path(name))
}

// NormalizeName 去除首尾空白并转为小写
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidateName 命令名必须是当前目录下的普通文件名，
// 读取、编辑、删除前同样检查，避免访问命令目录之外的文件
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q would be hidden", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.ContainsFunc(name, unicode.IsSpace):
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidName, name)
	}
	return nil
}

// Create 写入命令文件（覆盖已有文件）并设置可执行权限
// dir 为空时写入命令目录。写入失败不回滚。
func (h *Handler) Create(name, content, dir string) error {
	if dir == "" {
		dir = h.dir
	}
	path := filepath.Join(dir, name)

	if err := afero.WriteFile(h.fs, path, []byte(content), ExecMode); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}

	if err := h.fs.Chmod(path, ExecMode); err != nil {
		return &IOError{Op: "chmod", Path: path, Err: err}
	}

	logging.Logger.Debug().Str("path", path).Msg("command written")
	return nil
}

// Add 新建命令：拒绝保留名与已存在的名称，返回规范化后的名称
func (h *Handler) Add(name string, r Recipe) (string, error) {
	name = NormalizeName(name)
	if name == ReservedName {
		return name, ErrReservedName
	}
	if err := ValidateName(name); err != nil {
		return name, err
	}
	if h.Exists(name) {
		return name, fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	}
	if err := r.Validate(); err != nil {
		return name, err
	}

	return name, h.Create(name, r.Bake(), "")
}

// Read 读取并解析命令文件
func (h *Handler) Read(name string) (Command, error) {
	if err := ValidateName(name); err != nil {
		return Command{}, err
	}
	path := h.Path(name)

	data, err := afero.ReadFile(h.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Command{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return Command{}, &IOError{Op: "read", Path: path, Err: err}
	}

	recipe, symbol, err := Decode(string(data))
	if err != nil {
		return Command{}, fmt.Errorf("%s: %w", name, err)
	}

	return Command{Name: name, Path: path, Recipe: recipe, Symbol: symbol}, nil
}

// Content 返回命令文件原始内容
func (h *Handler) Content(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	path := h.Path(name)
	data, err := afero.ReadFile(h.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}

// View 读取并解析命令的四个字段
func (h *Handler) View(name string) (Command, error) {
	return h.Read(name)
}

// Source 返回命令指向的脚本路径
func (h *Handler) Source(name string) (string, error) {
	cmd, err := h.Read(name)
	if err != nil {
		return "", err
	}
	return cmd.Recipe.Source, nil
}

// Edit 应用补丁后重新生成命令；名称变化时先创建新文件再删除旧文件。
// 两步之间不是原子的：删除失败时返回 ErrStaleCopy，新旧两个文件同时存在。
func (h *Handler) Edit(name string, p Patch) (EditResult, error) {
	current, err := h.Read(name)
	if err != nil {
		return EditResult{}, err
	}

	result := EditResult{
		OldName: name,
		Name:    name,
		Recipe:  current.Recipe.Apply(p),
	}

	if p.Name != nil {
		result.Name = NormalizeName(*p.Name)
	}
	result.Renamed = result.Name != name

	if result.Renamed {
		if result.Name == ReservedName {
			return result, ErrReservedName
		}
		if err := ValidateName(result.Name); err != nil {
			return result, err
		}
		if h.Exists(result.Name) {
			return result, fmt.Errorf("%w: %s", ErrAlreadyExists, result.Name)
		}
	}

	if err := result.Recipe.Validate(); err != nil {
		return result, err
	}

	if err := h.Create(result.Name, result.Recipe.Bake(), ""); err != nil {
		return result, err
	}

	if result.Renamed {
		if err := h.Delete(name); err != nil {
			return result, fmt.Errorf("%w: both %s and %s exist: %v", ErrStaleCopy, name, result.Name, err)
		}
	}

	return result, nil
}

// Delete 删除命令文件
func (h *Handler) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if !h.Exists(name) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	path := h.Path(name)
	if err := h.fs.Remove(path); err != nil {
		return &IOError{Op: "remove", Path: path, Err: err}
	}

	logging.Logger.Debug().Str("path", path).Msg("command removed")
	return nil
}
