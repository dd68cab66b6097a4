package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// FileExists 检查文件是否存在
func FileExists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// WriteFileAtomic 先写入同目录下的临时文件，再重命名覆盖目标文件
func WriteFileAtomic(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	tmpPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp-"+uuid.NewString())

	if err := afero.WriteFile(fs, tmpPath, data, perm); err != nil {
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("写入临时文件失败: %w", err)
	}

	if err := fs.Chmod(tmpPath, perm); err != nil {
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("设置文件权限失败: %w", err)
	}

	if err := fs.Rename(tmpPath, path); err != nil {
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("替换文件失败: %w", err)
	}

	return nil
}

// WriteJSONFile 写入 JSON 文件
func WriteJSONFile(fs afero.Fs, path string, data interface{}, perm os.FileMode) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化 JSON 失败: %w", err)
	}

	return WriteFileAtomic(fs, path, jsonData, perm)
}

// BackupFile 备份文件
func BackupFile(fs afero.Fs, path string) (string, error) {
	if !FileExists(fs, path) {
		return "", nil // 原文件不存在不算错误
	}

	backupPath := path + ".backup"
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("读取原文件失败: %w", err)
	}

	if err := afero.WriteFile(fs, backupPath, data, 0600); err != nil {
		return "", fmt.Errorf("创建备份失败: %w", err)
	}

	return backupPath, nil
}
