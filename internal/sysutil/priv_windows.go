//go:build windows

package sysutil

import "golang.org/x/sys/windows"

// IsPrivileged 当前进程令牌是否已提升
func IsPrivileged() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
