// internal/app/bootstrap/logger.go
package bootstrap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// withLogFile tees logger into a size-rotated JSON file when LogFile is
// set. The core logger built by WAFFLE keeps writing to stdout.
func withLogFile(appCfg AppConfig, logger *zap.Logger) *zap.Logger {
	if appCfg.LogFile == "" {
		return logger
	}

	file := zapcore.AddSync(&lumberjack.Logger{
		Filename:   appCfg.LogFile,
		MaxSize:    100, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	})
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	return logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		// The file honors the same level as the core logger.
		return zapcore.NewTee(c, zapcore.NewCore(enc, file, zap.LevelEnablerFunc(c.Enabled)))
	}))
}
