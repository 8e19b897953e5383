package sysutil

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 日志默认值
const (
	DefaultLogFile = "netsentry.log"
	DefaultLogTag  = "NetSentry Network Activity"
)

// TimeLayout 日志时间格式, 例如 2026-10-15 09:00:00,123
const TimeLayout = "2006-01-02 15:04:05,000"

// ActivityLogger 网络活动日志, 一行一个事件:
// <timestamp> - <tag> - <LEVEL> - <message>
type ActivityLogger struct {
	*zap.SugaredLogger
	Log  *zap.Logger
	file io.Closer
}

// NewActivityLogger 以追加模式打开(或创建)日志文件, 级别固定为 Debug
func NewActivityLogger(path, tag string) (*ActivityLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	l := NewActivityLoggerTo(zapcore.AddSync(f), tag)
	l.file = f
	return l, nil
}

// NewActivityLoggerTo 写入任意 WriteSyncer, 不负责关闭
func NewActivityLoggerTo(ws zapcore.WriteSyncer, tag string) *ActivityLogger {
	core := zapcore.NewCore(NewActivityEncoder(tag), ws, zap.DebugLevel)
	log := zap.New(core)
	return &ActivityLogger{SugaredLogger: log.Sugar(), Log: log}
}

// NewActivityEncoder console encoder, 字段以 " - " 分隔, 标签写在级别之前
func NewActivityEncoder(tag string) zapcore.Encoder {
	config := zap.NewProductionEncoderConfig()
	config.ConsoleSeparator = " - "
	config.EncodeTime = zapcore.TimeEncoderOfLayout(TimeLayout)
	config.EncodeLevel = taggedLevelEncoder(tag)
	config.NameKey = ""
	config.CallerKey = ""
	config.FunctionKey = ""
	config.StacktraceKey = ""
	return zapcore.NewConsoleEncoder(config)
}

func taggedLevelEncoder(tag string) zapcore.LevelEncoder {
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(tag)
		enc.AppendString(l.CapitalString())
	}
}

// Close 刷盘并关闭日志文件
func (l *ActivityLogger) Close() error {
	err := l.Log.Sync()
	if l.file != nil {
		err = multierr.Append(err, l.file.Close())
		l.file = nil
	}
	return err
}
