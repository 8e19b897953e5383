package collector

import (
	"context"
	"slices"

	psnet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/Hara602/netSentry/internal/model"
)

type hostSource struct{}

func (hostSource) Connections(ctx context.Context) ([]model.RawConnection, error) {
	stats, err := psnet.ConnectionsWithContext(ctx, "inet")
	if err != nil {
		return nil, err
	}
	raw := make([]model.RawConnection, 0, len(stats))
	for _, s := range stats {
		rc := model.RawConnection{Type: s.Type, PID: s.Pid}
		if s.Laddr.IP != "" || s.Laddr.Port != 0 {
			rc.Local = &model.Addr{IP: s.Laddr.IP, Port: s.Laddr.Port}
		}
		raw = append(raw, rc)
	}
	return raw, nil
}

type hostResolver struct{}

func (hostResolver) ProcessName(ctx context.Context, pid int32) (string, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return "", classify(pid, err)
	}

	name, err := p.NameWithContext(ctx)
	if err != nil {
		if isZombie(ctx, p) {
			return "", &ResolveError{PID: pid, Err: ErrZombieProcess}
		}
		// 读取过程中进程退出
		if ok, _ := p.IsRunningWithContext(ctx); !ok {
			return "", &ResolveError{PID: pid, Err: ErrNoSuchProcess}
		}
		return "", classify(pid, err)
	}
	if name == "" && isZombie(ctx, p) {
		return "", &ResolveError{PID: pid, Err: ErrZombieProcess}
	}
	return name, nil
}

func isZombie(ctx context.Context, p *process.Process) bool {
	status, err := p.StatusWithContext(ctx)
	return err == nil && slices.Contains(status, process.Zombie)
}
