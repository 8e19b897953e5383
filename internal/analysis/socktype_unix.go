//go:build !windows

package analysis

import "golang.org/x/sys/unix"

// 操作系统 socket 类型
const (
	SockStream = uint32(unix.SOCK_STREAM)
	SockDgram  = uint32(unix.SOCK_DGRAM)
)
