package schedule

import (
	"context"
	"sync"
	"time"
)

// Ticker 在单独的一个 goroutine 上按固定间隔调用回调.
// 回调之间不会重叠; 回调耗时超过间隔时, 下一次调用顺延.
type Ticker struct {
	interval time.Duration
	fn       func(context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewTicker(interval time.Duration, fn func(context.Context)) *Ticker {
	return &Ticker{interval: interval, fn: fn}
}

// Start 启动定时器, 已在运行时返回 false 且不会创建第二个循环.
// 第一次回调发生在启动后一个间隔.
func (t *Ticker) Start(ctx context.Context) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return false
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})
	go t.loop(ctx, t.done)
	return true
}

func (t *Ticker) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.C:
			t.fn(ctx)
		}
	}
}

// Stop 停止定时器并等待正在执行的回调返回
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}
