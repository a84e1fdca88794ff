// Package logging builds the process JSON logger.
package logging

import (
	"io"
	"log/slog"
	"time"
)

// New returns a JSON logger writing one object per line to w.
// Timestamps are emitted under "ts" as RFC3339Nano in loc, levels in lower case.
func New(w io.Writer, loc *time.Location) *slog.Logger {
	if loc == nil {
		loc = time.UTC
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.String("ts", a.Value.Time().In(loc).Format(time.RFC3339Nano))
			case slog.LevelKey:
				if lvl, ok := a.Value.Any().(slog.Level); ok {
					switch lvl {
					case slog.LevelDebug:
						return slog.String("level", "debug")
					case slog.LevelWarn:
						return slog.String("level", "warn")
					case slog.LevelError:
						return slog.String("level", "error")
					default:
						return slog.String("level", "info")
					}
				}
			}
			return a
		},
	})
	return slog.New(h)
}
