package logger

import (
	"community_bbs/internal/pkg/config"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 全局日志实例，InitLogger 之前为 Nop
var Log = zap.NewNop()

// InitLogger 根据配置初始化全局日志
func InitLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(getEncoder(cfg.Format), getWriter(cfg), level)
	Log = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	zap.ReplaceGlobals(Log)

	Log.Info("logger initialized", zap.String("level", level.String()), zap.String("path", cfg.Path))
	return Log, nil
}

// Sync 刷新缓冲区，进程退出前调用
func Sync() {
	_ = Log.Sync()
}

func getEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func getWriter(cfg config.LogConfig) zapcore.WriteSyncer {
	out := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if cfg.Path != "" {
		// 分片机制
		out = append(out, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}))
	}
	return zapcore.NewMultiWriteSyncer(out...)
}
