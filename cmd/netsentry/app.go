package main

import (
	"context"

	"github.com/Hara602/netSentry/internal/monitor"
	"github.com/Hara602/netSentry/internal/sysutil"
)

// app 把界面动作接到刷新器和日志文件上
type app struct {
	ctx      context.Context
	renderer *monitor.Renderer
	logFile  string
	log      *sysutil.ActivityLogger
}

func (a *app) Start() error {
	err := a.renderer.Start(a.ctx)
	if err != nil {
		a.log.Warnf("Start requested: %v", err)
	}
	return err
}

func (a *app) OpenLogs() error {
	err := sysutil.OpenLogs(a.logFile)
	if err != nil {
		a.log.Errorf("Open logs: %v", err)
	}
	return err
}

func (a *app) ClearLogs() error {
	return sysutil.ClearLogs(a.logFile)
}
