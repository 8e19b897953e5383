package collector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Hara602/netSentry/internal/analysis"
	"github.com/Hara602/netSentry/internal/model"
)

type fakeSource struct {
	conns []model.RawConnection
	err   error
}

func (f fakeSource) Connections(context.Context) ([]model.RawConnection, error) {
	return f.conns, f.err
}

type fakeResolver map[int32]string

func (f fakeResolver) ProcessName(_ context.Context, pid int32) (string, error) {
	name, ok := f[pid]
	if !ok {
		return "", &ResolveError{PID: pid, Err: ErrNoSuchProcess}
	}
	return name, nil
}

func newObserved() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

const (
	tcp = analysis.SockStream
	udp = analysis.SockDgram
)

func TestCollectExample(t *testing.T) {
	log, logs := newObserved()
	c := NewWith(fakeSource{conns: []model.RawConnection{
		{Type: tcp, PID: 100, Local: &model.Addr{IP: "127.0.0.1", Port: 8080}},
		{Type: udp, PID: 0},
	}}, fakeResolver{100: "svc"}, log)

	conns, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, conns, 1)
	assert.Equal(t, []string{"svc", "100", "127.0.0.1", "8080", "TCP"}, conns[0].Row())
	assert.Zero(t, logs.Len(), "PID-less records are skipped silently")
}

func TestCollectSkipsUnresolvable(t *testing.T) {
	log, logs := newObserved()

	var raw []model.RawConnection
	names := fakeResolver{}
	const n, m = 10, 6
	for i := 0; i < n; i++ {
		pid := int32(1000 + i)
		raw = append(raw, model.RawConnection{Type: tcp, PID: pid, Local: &model.Addr{IP: "10.0.0.1", Port: uint32(i)}})
		if i < m {
			names[pid] = fmt.Sprintf("proc-%d", i)
		}
	}

	conns, err := NewWith(fakeSource{conns: raw}, names, log).Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, conns, m)
	assert.Equal(t, n-m, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Equal(t, n-m, logs.Len())
}

func TestCollectPreservesOrder(t *testing.T) {
	log, _ := newObserved()
	raw := []model.RawConnection{
		{Type: udp, PID: 30, Local: &model.Addr{IP: "::", Port: 53}},
		{Type: tcp, PID: 10},
		{Type: 99, PID: 20, Local: &model.Addr{IP: "0.0.0.0", Port: 0}},
	}
	conns, err := NewWith(fakeSource{conns: raw}, fakeResolver{10: "a", 20: "b", 30: "c"}, log).
		Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, conns, 3)

	assert.Equal(t, []string{"c", "30", "::", "53", "UDP"}, conns[0].Row())
	assert.Equal(t, []string{"a", "10", "", "", "TCP"}, conns[1].Row())
	assert.Equal(t, []string{"b", "20", "0.0.0.0", "0", "Unknown"}, conns[2].Row())
}

func TestCollectSourceError(t *testing.T) {
	log, _ := newObserved()
	boom := errors.New("netlink unavailable")
	_, err := NewWith(fakeSource{err: boom}, fakeResolver{}, log).Collect(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestClassify(t *testing.T) {
	err := classify(7, fmt.Errorf("read /proc/7/stat: %w", errors.New("x")))
	var re *ResolveError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, int32(7), re.PID)
	assert.Equal(t, "other", Reason(err))

	assert.Equal(t, "no_such_process", Reason(classify(1, fmt.Errorf("open: %w", fs.ErrNotExist))))
	assert.Equal(t, "access_denied", Reason(classify(1, fmt.Errorf("open: %w", fs.ErrPermission))))
	assert.Equal(t, "zombie", Reason(&ResolveError{PID: 1, Err: ErrZombieProcess}))
}
