package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Hara602/netSentry/internal/metrics"
	"github.com/Hara602/netSentry/internal/model"
	"github.com/Hara602/netSentry/internal/schedule"
)

// ErrAlreadyRunning 重复启动
var ErrAlreadyRunning = errors.New("monitoring is already running")

// State 刷新器状态
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Snapshotter 生成一次完整的连接快照
type Snapshotter interface {
	Collect(ctx context.Context) ([]model.Connection, error)
}

// Renderer 每个间隔刷新一次视图并写日志
type Renderer struct {
	src    Snapshotter
	view   View
	log    *zap.SugaredLogger
	ticker *schedule.Ticker

	mu    sync.Mutex
	state State
}

func NewRenderer(src Snapshotter, view View, log *zap.SugaredLogger, interval time.Duration) *Renderer {
	r := &Renderer{src: src, view: view, log: log, state: Stopped}
	r.ticker = schedule.NewTicker(interval, r.Tick)
	return r
}

// Start Stopped -> Running. 已在运行时返回 ErrAlreadyRunning
func (r *Renderer) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == Running || !r.ticker.Start(ctx) {
		return ErrAlreadyRunning
	}
	r.state = Running
	r.log.Info("Network activity monitoring started")
	return nil
}

// Stop 只在进程退出时调用, 等待当前刷新完成
func (r *Renderer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Running {
		return
	}
	r.ticker.Stop()
	r.state = Stopped
	r.log.Info("Network activity monitoring stopped")
}

func (r *Renderer) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Tick 一次刷新. 任何错误或 panic 都在这里截住, 只结束本次刷新
func (r *Renderer) Tick(ctx context.Context) {
	metrics.IncTick()
	defer func() {
		if p := recover(); p != nil {
			r.fail(fmt.Errorf("panic: %v", p))
		}
	}()

	r.log.Info("Refreshing network activity...")
	r.view.Clear()

	conns, err := r.src.Collect(ctx)
	if err != nil {
		r.fail(err)
		return
	}

	for i, conn := range conns {
		r.view.Append(conn)
		metrics.IncConnection()
		r.log.Info(conn.Summary(i + 1))
	}
	metrics.SetSnapshotRows(len(conns))
}

func (r *Renderer) fail(err error) {
	metrics.IncTickFailure()
	r.log.Errorf("Error refreshing network activity: %v", err)
}
