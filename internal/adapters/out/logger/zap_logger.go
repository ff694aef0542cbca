package logger

import (
	"fmt"

	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger структурированный JSON вывод для dev/stage/production
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger собирает production-конфигурацию zap, debug уровень включается флагом.
func NewZapLogger(debug bool) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.EncoderConfig.MessageKey = "event"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger.zap.build_failed: %w", err)
	}

	return NewZapLoggerFrom(logger), nil
}

func NewZapLoggerFrom(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

// NewNopLogger логгер, который ничего не пишет. Используется в тестах.
func NewNopLogger() *ZapLogger {
	return NewZapLoggerFrom(zap.NewNop())
}

func (l *ZapLogger) WithFields(fields out.LogFields) out.LoggerPort {
	return &ZapLogger{logger: l.logger.With(zapFields(fields)...)}
}

func (l *ZapLogger) WithModule(module string) out.LoggerPort {
	return &ZapLogger{logger: l.logger.Named(module)}
}

func (l *ZapLogger) Debug(event string, fields out.LogFields) {
	l.logger.Debug(event, zapFields(fields)...)
}

func (l *ZapLogger) Info(event string, fields out.LogFields) {
	l.logger.Info(event, zapFields(fields)...)
}

func (l *ZapLogger) Warn(event string, fields out.LogFields) {
	l.logger.Warn(event, zapFields(fields)...)
}

func (l *ZapLogger) Error(event string, fields out.LogFields) {
	l.logger.Error(event, zapFields(fields)...)
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

func zapFields(fields out.LogFields) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, k := range sortedKeys(fields) {
		if isSensitive(k) {
			zapFields = append(zapFields, zap.String(k, redacted))
			continue
		}
		zapFields = append(zapFields, zap.Any(k, fields[k]))
	}
	return zapFields
}
