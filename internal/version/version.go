package version

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"github.com/tcnksm/go-latest"
)

// Version 当前版本，同时写入配置文件的 version 字段，必须是数字
const Version = "1.4"

// BuildDate 构建日期（由编译时注入）
var BuildDate = "unknown"

// GitCommit Git 提交哈希（由编译时注入）
var GitCommit = "unknown"

// Unknown 无法获取最新版本时返回
const Unknown = "unknown"

const (
	repoOwner  = "YangQing-Lin"
	repoName   = "cmd-baker"
	modulePath = "github.com/" + repoOwner + "/" + repoName
)

// GetVersion 获取版本信息
func GetVersion() string { return Version }

// GetBuildDate 获取构建日期
func GetBuildDate() string { return BuildDate }

// GetGitCommit 获取 Git 提交哈希
func GetGitCommit() string { return GitCommit }

var (
	latestSource latest.Source = &latest.GithubTag{
		Owner:             repoOwner,
		Repository:        repoName,
		FixVersionStrFunc: latest.DeleteFrontV(),
	}
	checkFunc = latest.Check
)

// FetchLatest 查询 GitHub 上的最新版本，任何失败都返回 Unknown
func FetchLatest() string {
	res, err := checkFunc(latestSource, Version)
	if err != nil || res == nil {
		return Unknown
	}

	n, ok := Numeric(res.Current)
	if !ok {
		n, ok = fromSemver(res.Current)
	}
	if !ok {
		return Unknown
	}
	return n.String()
}

// fromSemver go-latest 返回规范化的 "1.6.0"，补丁号为 0 时还原为 "1.6"
func fromSemver(s string) (json.Number, bool) {
	v, err := goversion.NewVersion(s)
	if err != nil || v.Prerelease() != "" {
		return "", false
	}
	seg := v.Segments()
	if len(seg) < 2 {
		return "", false
	}
	for _, rest := range seg[2:] {
		if rest != 0 {
			return "", false
		}
	}
	return json.Number(fmt.Sprintf("%d.%d", seg[0], seg[1])), true
}

// Numeric 将 "v1.5" / "1.5" 规范为数字形式，非数字返回 false
func Numeric(s string) (json.Number, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return "", false
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "", false
	}
	return json.Number(s), true
}

// IsNewer candidate 是否比 current 新
func IsNewer(candidate, current string) (bool, error) {
	c, err := goversion.NewVersion(candidate)
	if err != nil {
		return false, fmt.Errorf("无效的版本号 %q: %w", candidate, err)
	}
	cur, err := goversion.NewVersion(current)
	if err != nil {
		return false, fmt.Errorf("无效的版本号 %q: %w", current, err)
	}
	return c.GreaterThan(cur), nil
}
