package baker

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 命令文件不存在
	ErrNotFound = errors.New("command does not exist")
	// ErrAlreadyExists 命令文件已存在
	ErrAlreadyExists = errors.New("command already exists")
	// ErrReservedName 名称被自安装的 bake 命令占用
	ErrReservedName = fmt.Errorf("%w: name %q is reserved", ErrAlreadyExists, ReservedName)
	// ErrInvalidName 名称不能作为文件名使用
	ErrInvalidName = errors.New("invalid command name")
	// ErrInvalidRecipe 字段无法组成可还原的两行格式
	ErrInvalidRecipe = errors.New("invalid recipe")
	// ErrMalformedContent 文件内容不是两行三段的格式
	ErrMalformedContent = errors.New("malformed command content")
	// ErrStaleCopy 重命名后旧文件删除失败，两个文件同时存在
	ErrStaleCopy = errors.New("old command file left behind")
)

// IOError 底层读写、删除或修改权限失败
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOFailure 判断错误链中是否包含 IOError
func IsIOFailure(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
