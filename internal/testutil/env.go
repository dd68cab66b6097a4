package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/mitchellh/go-homedir"
)

// WithTempHome 将 HOME 指向临时目录并清空 CMD_BAKER_DIR 后执行 fn
func WithTempHome(t *testing.T, fn func(home string)) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("CMD_BAKER_DIR", "")

	prev := homedir.DisableCache
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = prev }()

	fn(home)
}

// WithTempCWD 在临时工作目录中执行 fn，结束后恢复
func WithTempCWD(t *testing.T, fn func(cwd string)) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("获取工作目录失败: %v", err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("切换工作目录失败: %v", err)
	}
	defer func() {
		_ = os.Chdir(orig)
	}()

	fn(dir)
}

// CaptureOutput 捕获 fn 执行期间写入 os.Stdout / os.Stderr 的内容
func CaptureOutput(t *testing.T, fn func()) (string, string) {
	t.Helper()

	origOut, origErr := os.Stdout, os.Stderr
	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("创建管道失败: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("创建管道失败: %v", err)
	}

	os.Stdout, os.Stderr = wOut, wErr

	outCh := make(chan string)
	errCh := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		outCh <- buf.String()
	}()
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rErr)
		errCh <- buf.String()
	}()

	defer func() {
		os.Stdout, os.Stderr = origOut, origErr
	}()

	fn()

	_ = wOut.Close()
	_ = wErr.Close()
	stdout, stderr := <-outCh, <-errCh
	_ = rOut.Close()
	_ = rErr.Close()

	return stdout, stderr
}
