package portable

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// MarkerFile 便携版标记文件名
const MarkerFile = "portable.ini"

// DirName 便携版模式下的数据目录名
const DirName = ".cmd-baker"

var portableExecutableFunc = os.Executable

// IsPortableMode 检测是否为便携版模式
// 便携版模式：在程序所在目录下存在 portable.ini 文件
func IsPortableMode(fs afero.Fs) bool {
	execPath, err := portableExecutableFunc()
	if err != nil {
		return false
	}

	execDir := filepath.Dir(execPath)
	portableFile := filepath.Join(execDir, MarkerFile)

	info, err := fs.Stat(portableFile)
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// GetPortableBaseDir 获取便携版数据目录
// 便携版模式下，数据目录为程序所在目录下的 .cmd-baker 子目录
func GetPortableBaseDir() (string, error) {
	execPath, err := portableExecutableFunc()
	if err != nil {
		return "", err
	}

	return filepath.Join(filepath.Dir(execPath), DirName), nil
}
