package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Key 配置项名称
type Key string

// 配置记录支持的键
const (
	KeyMainPath Key = "main_path"
	KeyIsBaked  Key = "is_baked"
	KeyVersion  Key = "version"
	KeyLanguage Key = "language"
)

var (
	// ErrUnknownKey 不支持的配置键
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue 配置值类型不匹配
	ErrInvalidValue = errors.New("invalid config value")
)

// Record 配置记录（单例，每个安装一份）
type Record struct {
	MainPath string      `json:"main_path"`
	IsBaked  bool        `json:"is_baked"`
	Version  json.Number `json:"version,omitempty"`
	Language string      `json:"language,omitempty"`
}

// HasVersion 旧版本安装没有 version 键
func (r Record) HasVersion() bool {
	return r.Version != ""
}

// set 合并单个键，不写盘
func (r *Record) set(key Key, value interface{}) error {
	switch key {
	case KeyMainPath:
		s, ok := value.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: %s 需要非空字符串, 实际 %T", ErrInvalidValue, key, value)
		}
		r.MainPath = s
	case KeyIsBaked:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s 需要布尔值, 实际 %T", ErrInvalidValue, key, value)
		}
		r.IsBaked = b
	case KeyVersion:
		n, err := toNumber(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, key, err)
		}
		r.Version = n
	case KeyLanguage:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s 需要字符串, 实际 %T", ErrInvalidValue, key, value)
		}
		r.Language = s
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	return nil
}

func toNumber(value interface{}) (json.Number, error) {
	var s string
	switch v := value.(type) {
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimPrefix(strings.TrimSpace(v), "v")
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		s = strconv.Itoa(v)
	default:
		return "", fmt.Errorf("不支持的版本类型 %T", value)
	}

	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "", fmt.Errorf("版本必须是数字: %q", s)
	}

	return json.Number(s), nil
}
