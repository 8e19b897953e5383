package collector

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Hara602/netSentry/internal/analysis"
	"github.com/Hara602/netSentry/internal/metrics"
	"github.com/Hara602/netSentry/internal/model"
)

// Source 查询操作系统当前的 inet 连接 (TCP/UDP, v4/v6)
type Source interface {
	Connections(ctx context.Context) ([]model.RawConnection, error)
}

// Resolver 根据 PID 解析进程名
type Resolver interface {
	ProcessName(ctx context.Context, pid int32) (string, error)
}

// Collector 每次调用 Collect 生成一份完整的连接快照
type Collector struct {
	src Source
	res Resolver
	log *zap.SugaredLogger
	now func() time.Time
}

// New 基于 gopsutil 的默认实现
func New(log *zap.SugaredLogger) *Collector {
	return NewWith(hostSource{}, hostResolver{}, log)
}

func NewWith(src Source, res Resolver, log *zap.SugaredLogger) *Collector {
	return &Collector{src: src, res: res, log: log, now: time.Now}
}

// Collect 保持系统枚举顺序, 不排序
// 没有归属进程的连接直接跳过; 进程解析失败记一条 error 日志并跳过
func (c *Collector) Collect(ctx context.Context) ([]model.Connection, error) {
	raw, err := c.src.Connections(ctx)
	if err != nil {
		return nil, fmt.Errorf("query connections: %w", err)
	}

	ts := c.now()
	conns := make([]model.Connection, 0, len(raw))
	for _, rc := range raw {
		if rc.PID == 0 {
			continue
		}

		name, err := c.res.ProcessName(ctx, rc.PID)
		if err != nil {
			c.log.Errorf("Error processing connection: %v", err)
			metrics.IncResolveFailure(Reason(err))
			continue
		}

		conn := model.Connection{
			Process:   name,
			PID:       rc.PID,
			Protocol:  analysis.Protocol(rc.Type),
			TimeStamp: ts,
		}
		if rc.Local != nil {
			conn.LocalIP = rc.Local.IP
			conn.LocalPort = fmt.Sprint(rc.Local.Port)
		}
		conns = append(conns, conn)
	}
	return conns, nil
}
