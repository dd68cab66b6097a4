package baker

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// maxSuggestDistance 超过该编辑距离不再给出建议
const maxSuggestDistance = 2

// Entry 命令目录中的一项
type Entry struct {
	Name    string    `json:"name" yaml:"name"`
	Path    string    `json:"path" yaml:"path"`
	ModTime time.Time `json:"modified" yaml:"modified"`
}

// List 列出命令目录中的非隐藏项；pattern 非空时按 glob 过滤
func (h *Handler) List(pattern string) ([]Entry, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	infos, err := afero.ReadDir(h.fs, h.dir)
	if err != nil {
		return nil, &IOError{Op: "list", Path: h.dir, Err: err}
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if pattern != "" {
			if ok, _ := doublestar.Match(pattern, name); !ok {
				continue
			}
		}
		entries = append(entries, Entry{
			Name:    name,
			Path:    h.Path(name),
			ModTime: info.ModTime(),
		})
	}

	return entries, nil
}

// Duplicates 找出内容完全相同的命令组，通常是重命名被中断留下的旧文件。
// 无法解析的文件汇总到返回的错误中，不影响其他文件。
func (h *Handler) Duplicates() ([][]string, error) {
	entries, err := h.List("")
	if err != nil {
		return nil, err
	}

	var errs *multierror.Error
	groups := make(map[string][]string)
	for _, entry := range entries {
		cmd, err := h.Read(entry.Name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		key := cmd.Recipe.Bake()
		groups[key] = append(groups[key], entry.Name)
	}

	var dups [][]string
	for _, names := range groups {
		if len(names) > 1 {
			sort.Strings(names)
			dups = append(dups, names)
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i][0] < dups[j][0] })

	return dups, errs.ErrorOrNil()
}

// Suggest 返回与 name 最接近的已有命令名
func (h *Handler) Suggest(name string) (string, bool) {
	entries, err := h.List("")
	if err != nil {
		return "", false
	}

	best, bestDist := "", maxSuggestDistance+1
	for _, entry := range entries {
		if entry.Name == name {
			continue
		}
		if d := levenshtein.ComputeDistance(name, entry.Name); d < bestDist {
			best, bestDist = entry.Name, d
		}
	}

	return best, best != ""
}
