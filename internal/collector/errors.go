package collector

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/shirou/gopsutil/v4/process"
)

var (
	ErrNoSuchProcess = errors.New("no such process")
	ErrAccessDenied  = errors.New("access denied")
	ErrZombieProcess = errors.New("zombie process")
)

// ResolveError 单个连接的进程解析失败, 只影响这一条连接
type ResolveError struct {
	PID int32
	Err error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("process %d: %v", e.PID, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// classify 把底层错误归到三类已知失败, 其它原样保留
func classify(pid int32, err error) error {
	switch {
	case errors.Is(err, process.ErrorProcessNotRunning), errors.Is(err, fs.ErrNotExist):
		err = fmt.Errorf("%w: %v", ErrNoSuchProcess, err)
	case errors.Is(err, fs.ErrPermission):
		err = fmt.Errorf("%w: %v", ErrAccessDenied, err)
	}
	return &ResolveError{PID: pid, Err: err}
}

// Reason 失败原因, 用作 metrics 标签
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrNoSuchProcess):
		return "no_such_process"
	case errors.Is(err, ErrAccessDenied):
		return "access_denied"
	case errors.Is(err, ErrZombieProcess):
		return "zombie"
	default:
		return "other"
	}
}
