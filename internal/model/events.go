package model

import (
	"fmt"
	"strconv"
	"time"
)

// Addr 本地端点
type Addr struct {
	IP   string
	Port uint32
}

// RawConnection 操作系统连接表中的一条原始记录
type RawConnection struct {
	Type  uint32 // socket type (SOCK_STREAM / SOCK_DGRAM)
	PID   int32  // 0 = 无归属进程
	Local *Addr  // nil = 未绑定本地地址
}

// Connection 一次轮询中解析出的连接
type Connection struct {
	Process   string
	PID       int32
	LocalIP   string // "" if no local address
	LocalPort string // "" if no local address
	Protocol  string // "TCP", "UDP", "Unknown"
	TimeStamp time.Time
}

// Row 表格列顺序: 进程名, PID, IP, 端口, 协议
func (c Connection) Row() []string {
	return []string{c.Process, strconv.Itoa(int(c.PID)), c.LocalIP, c.LocalPort, c.Protocol}
}

// Summary 写入日志的一行描述, n 从 1 开始
func (c Connection) Summary(n int) string {
	return fmt.Sprintf("Connection %d: Process name: %s, PID: %d, IP: %s, Port: %s, Connection type: %s",
		n, c.Process, c.PID, c.LocalIP, c.LocalPort, c.Protocol)
}
