package logger

import (
	"sort"
	"strings"

	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

const redacted = "***"

// Ключи, значения которых не попадают в журнал: пароль пользователя и токен внешнего API
var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"token":         {},
	"authorization": {},
}

func isSensitive(key string) bool {
	_, exists := sensitiveKeys[strings.ToLower(key)]
	return exists
}

// mergeFields собирает поля логгера и события, поля события важнее
func mergeFields(base, fields out.LogFields) out.LogFields {
	merged := make(out.LogFields, len(base)+len(fields))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return merged
}

func sortedKeys(fields out.LogFields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
