package log

import (
	"context"
	"fmt"
	"strings"
)

const (
	ModeProduction  = "production"
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

type requestIDKey struct{}

// WithRequestID returns a context whose log lines carry reqID.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, reqID)
}

// message picks the log message out of the variadic args.
//
// Calls come in two shapes: Info(ctx, "msg", "key", val, ...) for structured
// lines, and Error(ctx, "prefix: ", err) for the printf-less style. A leading
// string followed by an even number of args whose keys are strings is treated
// as structured; anything else is concatenated into the message.
func message(arg []any) string {
	if len(arg) == 0 {
		return ""
	}
	if isStructured(arg) {
		return arg[0].(string)
	}
	parts := make([]string, 0, len(arg))
	for _, a := range arg {
		parts = append(parts, fmt.Sprint(a))
	}
	return strings.Join(parts, "")
}

func fields(arg []any) []any {
	if !isStructured(arg) {
		return nil
	}
	return arg[1:]
}

func isStructured(arg []any) bool {
	if len(arg) < 3 || len(arg)%2 == 0 {
		return false
	}
	if _, ok := arg[0].(string); !ok {
		return false
	}
	for i := 1; i < len(arg); i += 2 {
		if _, ok := arg[i].(string); !ok {
			return false
		}
	}
	return true
}
