package monitor

import "github.com/Hara602/netSentry/internal/model"

// View 表格视图, 只在刷新回调所在的 goroutine 上调用
type View interface {
	Clear()
	Append(conn model.Connection)
}

// DiscardView 无界面运行时使用, 连接只写入日志
type DiscardView struct{}

func (DiscardView) Clear()                  {}
func (DiscardView) Append(model.Connection) {}
