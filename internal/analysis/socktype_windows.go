//go:build windows

package analysis

import "golang.org/x/sys/windows"

// 操作系统 socket 类型
const (
	SockStream = uint32(windows.SOCK_STREAM)
	SockDgram  = uint32(windows.SOCK_DGRAM)
)
