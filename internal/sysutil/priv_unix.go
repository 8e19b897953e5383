//go:build !windows

package sysutil

import "golang.org/x/sys/unix"

// IsPrivileged root 才能看到其他用户进程的名称
func IsPrivileged() bool {
	return unix.Geteuid() == 0
}
