package logger

import (
	"log/slog"
	"time"
)

// Error returns an "error" attribute, or an empty one for a nil err so
// callers can pass it unconditionally.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

func Role(role any) slog.Attr {
	if role == nil {
		return slog.Attr{}
	}
	return slog.Any("role", role)
}

func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }

// Component names the package emitting a record.
func Component(name string) slog.Attr { return slog.String("component", name) }

// Statement is a SQL statement or a redis command name.
func Statement(s string) slog.Attr { return slog.String("statement", s) }

// Outcome is a session resolution outcome.
func Outcome(o string) slog.Attr { return slog.String("outcome", o) }
