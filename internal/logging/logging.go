package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/genricoloni/mediactl/internal/domain"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the application logger.
// Human readable output goes to stderr; when a log file is configured a JSON
// copy is written there as well, rotated by lumberjack. Stack traces are only
// recorded for DPanic and above.
func New(cfg domain.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q: %v", domain.ErrConfig, cfg.GetLogLevel(), err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	if path := cfg.GetLogFile(); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("%w: creating log directory: %v", domain.ErrConfig, err)
		}
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(newRotator(cfg)),
			level,
		)
		core = zapcore.NewTee(core, fileCore)
	}

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.DPanicLevel)), nil
}

func newRotator(cfg domain.Config) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.GetLogFile(),
		MaxSize:    cfg.GetLogMaxSizeMB(),
		MaxBackups: cfg.GetLogMaxBackups(),
	}
}
