package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConsoleLogger_WritesModuleEventAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(time.UTC, &buf).
		WithModule("BookingService").
		WithFields(out.LogFields{"sessionId": "s-1"})

	logger.Warn("booking.submit.rejected", out.LogFields{"reason": "past date", "dentistId": 7})

	line := buf.String()
	assert.Contains(t, line, "WARN")
	assert.Contains(t, line, "[BookingService]")
	assert.Contains(t, line, "booking.submit.rejected")
	assert.Contains(t, line, ` dentistId=7 reason="past date" sessionId=s-1`)
	assert.Equal(t, 1, strings.Count(line, "\n"))
}

func TestConsoleLogger_WithFieldsDoesNotLeakIntoParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewConsoleLoggerWithWriter(time.UTC, &buf)
	_ = parent.WithFields(out.LogFields{"child": true})

	parent.Info("app.starting", out.LogFields{})

	assert.NotContains(t, buf.String(), "child")
	assert.Contains(t, buf.String(), "[unknown]")
}

func TestConsoleLogger_RedactsCredentials(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(time.UTC, &buf).WithModule("SessionService")

	logger.Info("session.login.success", out.LogFields{
		"email":    "alice@example.com",
		"password": "secret",
		"Token":    "eyJhbGciOi",
	})

	line := buf.String()
	assert.Contains(t, line, "email=alice@example.com")
	assert.Contains(t, line, "password=***")
	assert.Contains(t, line, "Token=***")
	assert.NotContains(t, line, "secret")
	assert.NotContains(t, line, "eyJhbGciOi")
}

func TestConsoleLogger_HighlightsErrorAndEncodesComposites(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(time.UTC, &buf)

	logger.Error("availability.intervals.fetch_failed", out.LogFields{
		"error": "upstream responded with status 500",
		"date":  time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC),
		"ids":   []int{1, 2},
	})

	line := buf.String()
	assert.Contains(t, line, "error="+colorRed+`"upstream responded with status 500"`+colorReset)
	assert.Contains(t, line, `date="2030-01-07 00:00:00 +0000 UTC"`)
	assert.Contains(t, line, "ids=[1,2]")
}

func TestConsoleLogger_DerivedLoggersShareWriter(t *testing.T) {
	var buf bytes.Buffer
	root := NewConsoleLoggerWithWriter(time.UTC, &buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			root.WithModule("HTTP").Info("http.request", out.LogFields{"status": 200})
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 20)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, "status=200"))
	}
}

func TestZapLogger_MapsLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLoggerFrom(zap.New(core)).
		WithModule("CacheAdapter").
		WithFields(out.LogFields{"size": 10})

	logger.Debug("cache.get.miss", out.LogFields{"key": "7:2025-06-10"})
	logger.Error("cache.init.failed", out.LogFields{"error": "boom"})

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "cache.get.miss", entries[0].Message)
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.Equal(t, "CacheAdapter", entries[0].LoggerName)
		assert.Equal(t, "7:2025-06-10", entries[0].ContextMap()["key"])
		assert.EqualValues(t, 10, entries[0].ContextMap()["size"])
		assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	}
}

func TestZapLogger_RedactsCredentials(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewZapLoggerFrom(zap.New(core))

	logger.Info("session.login.success", out.LogFields{"password": "secret", "userId": 1})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "***", entries[0].ContextMap()["password"])
		assert.EqualValues(t, 1, entries[0].ContextMap()["userId"])
	}
}

func TestNopLogger_DiscardsEverything(t *testing.T) {
	logger := NewNopLogger()
	assert.NotPanics(t, func() {
		logger.WithModule("x").WithFields(out.LogFields{"a": 1}).Info("noop", nil)
	})
}
