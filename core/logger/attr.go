package logger

import (
	"log/slog"
	"time"
)

// Helpers return an empty Attr for empty input, which slog drops, so
// callers can pass optional values without checks.

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error logs err under "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Method(method string) slog.Attr {
	return slog.String("method", method)
}

func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Query logs a raw query string. The QR payload travels in the query, so
// callers log it at debug level only.
func Query(raw string) slog.Attr {
	if raw == "" {
		return slog.Attr{}
	}
	return slog.String("query", raw)
}

func RemoteAddr(addr string) slog.Attr {
	if addr == "" {
		return slog.Attr{}
	}
	return slog.String("remote_addr", addr)
}

func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

func BytesOut(n int64) slog.Attr {
	return slog.Int64("bytes_out", n)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Format logs an image format name.
func Format(name string) slog.Attr {
	return slog.String("format", name)
}

// Size logs a requested image side in pixels.
func Size(px int) slog.Attr {
	return slog.Int("size", px)
}

// Count logs a counter under key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Key logs an arbitrary value.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
