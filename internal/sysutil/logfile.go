package sysutil

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/Hara602/netSentry/internal/analysis"
)

var (
	// ErrLogNotFound 日志文件不存在
	ErrLogNotFound = errors.New("log file not found")
	// ErrNotPlainText 日志文件头匹配到二进制类型, 拒绝交给系统打开
	ErrNotPlainText = errors.New("log file is not plain text")
)

// launch 可在测试中替换
var launch = func(cmd *exec.Cmd) error { return cmd.Start() }

// OpenLogs 用系统默认程序打开日志文件, 不等待程序退出
func OpenLogs(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrLogNotFound, path)
		}
		return fmt.Errorf("stat log file: %w", err)
	}

	result, err := analysis.InspectLog(path)
	if err != nil {
		return err
	}
	if !result.IsText {
		return fmt.Errorf("%w: %s (%s)", ErrNotPlainText, path, result.Message)
	}

	cmd := openCommand(path)
	if err := launch(cmd); err != nil {
		return fmt.Errorf("launch %s: %w", cmd.Path, err)
	}
	// 不关心查看器的退出状态, 只回收进程
	if cmd.Process != nil {
		go cmd.Wait()
	}
	return nil
}

// ClearLogs 把日志文件截断为一个空格
func ClearLogs(path string) error {
	if err := os.WriteFile(path, []byte(" "), 0o644); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}
	return nil
}
