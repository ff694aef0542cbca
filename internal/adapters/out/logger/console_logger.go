package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[37m"

	consoleTimeLayout = "15:04:05.000"
)

var levelColors = map[out.LogLevel]string{
	out.LogLevelDebug: colorGray,
	out.LogLevelInfo:  colorGreen,
	out.LogLevelWarn:  colorYellow,
	out.LogLevelError: colorRed,
}

// ConsoleLogger однострочный цветной вывод для локальной разработки:
// время клиники, уровень, модуль, событие и поля key=value по алфавиту.
type ConsoleLogger struct {
	fields   out.LogFields
	module   string
	location *time.Location
	writer   *lockedWriter
}

// lockedWriter общий для всех производных логгеров, строки запросов не перемешиваются
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (w *lockedWriter) writeLine(line string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.w, line)
}

func NewConsoleLogger(location *time.Location) *ConsoleLogger {
	return NewConsoleLoggerWithWriter(location, os.Stdout)
}

func NewConsoleLoggerWithWriter(location *time.Location, writer io.Writer) *ConsoleLogger {
	if location == nil {
		location = time.UTC
	}

	return &ConsoleLogger{
		fields:   out.LogFields{},
		location: location,
		writer:   &lockedWriter{w: writer},
	}
}

func (l *ConsoleLogger) WithFields(fields out.LogFields) out.LoggerPort {
	child := *l
	child.fields = mergeFields(l.fields, fields)
	return &child
}

func (l *ConsoleLogger) WithModule(module string) out.LoggerPort {
	child := *l
	child.module = module
	return &child
}

func (l *ConsoleLogger) Debug(event string, fields out.LogFields) {
	l.log(out.LogLevelDebug, event, fields)
}

func (l *ConsoleLogger) Info(event string, fields out.LogFields) {
	l.log(out.LogLevelInfo, event, fields)
}

func (l *ConsoleLogger) Warn(event string, fields out.LogFields) {
	l.log(out.LogLevelWarn, event, fields)
}

func (l *ConsoleLogger) Error(event string, fields out.LogFields) {
	l.log(out.LogLevelError, event, fields)
}

func (l *ConsoleLogger) log(level out.LogLevel, event string, fields out.LogFields) {
	module := l.module
	if module == "" {
		module = "unknown"
	}

	var line strings.Builder
	fmt.Fprintf(&line, "%s%s%s %s%-5s%s %s[%s]%s %s",
		colorGray, time.Now().In(l.location).Format(consoleTimeLayout), colorReset,
		levelColors[level], level, colorReset,
		colorCyan, module, colorReset,
		event,
	)

	merged := mergeFields(l.fields, fields)
	for _, key := range sortedKeys(merged) {
		value := consoleValue(key, merged[key])
		if key == "error" {
			value = colorRed + value + colorReset
		}
		fmt.Fprintf(&line, " %s=%s", key, value)
	}

	l.writer.writeLine(line.String())
}

// consoleValue значение поля для вывода. Строки с пробелами берутся в кавычки, составные значения пишутся JSON.
func consoleValue(key string, value interface{}) string {
	if isSensitive(key) {
		return redacted
	}

	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		if v == "" || strings.ContainsAny(v, " \t\n\"=") {
			return fmt.Sprintf("%q", v)
		}
		return v
	case fmt.Stringer:
		return consoleValue(key, v.String())
	case error:
		return consoleValue(key, v.Error())
	case bool, int, int64, float64:
		return fmt.Sprint(v)
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(encoded)
}
