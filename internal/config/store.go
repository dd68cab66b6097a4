package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/YangQing-Lin/cmd-baker/internal/logging"
	"github.com/YangQing-Lin/cmd-baker/internal/utils"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// ErrUnavailable 配置文件不存在、不可读或格式错误
var ErrUnavailable = errors.New("config unavailable")

// Store 配置存储：单条记录，每次修改整体重写
type Store struct {
	fs     afero.Fs
	path   string
	record Record
}

// NewStore 创建配置存储，不读取磁盘
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path 返回配置文件路径
func (s *Store) Path() string {
	return s.path
}

// Exists 配置文件是否存在
func (s *Store) Exists() bool {
	return utils.FileExists(s.fs, s.path)
}

// Load 读取配置文件并整体替换内存中的记录
func (s *Store) Load() error {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return fmt.Errorf("%w: 读取配置文件失败: %v", ErrUnavailable, err)
	}

	var record Record
	if err := json.Unmarshal(jsonc.ToJSON(data), &record); err != nil {
		return fmt.Errorf("%w: 解析配置文件失败: %v", ErrUnavailable, err)
	}

	s.record = record
	logging.Logger.Debug().Str("path", s.path).Msg("config loaded")
	return nil
}

// Get 返回内存中的记录
func (s *Store) Get() Record {
	return s.record
}

// Write 将给定记录（nil 时为当前记录）整体写入磁盘，并作为新的内存状态
func (s *Store) Write(record *Record) error {
	r := s.record
	if record != nil {
		r = *record
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	if err := utils.WriteJSONFile(s.fs, s.path, r, 0600); err != nil {
		return fmt.Errorf("保存配置文件失败: %w", err)
	}

	s.record = r
	logging.Logger.Debug().Str("path", s.path).Msg("config written")
	return nil
}

// Set 修改单个键后立即整体写盘；失败时内存记录保持不变
func (s *Store) Set(key Key, value interface{}) error {
	next := s.record
	if err := next.set(key, value); err != nil {
		return err
	}

	return s.Write(&next)
}

// Remove 备份后删除配置文件，下次运行将重新初始化
func (s *Store) Remove() (string, error) {
	backupPath, err := utils.BackupFile(s.fs, s.path)
	if err != nil {
		return "", fmt.Errorf("备份配置文件失败: %w", err)
	}

	if err := s.fs.Remove(s.path); err != nil {
		return backupPath, fmt.Errorf("删除配置文件失败: %w", err)
	}

	s.record = Record{}
	return backupPath, nil
}
