package server

import "time"

const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 2339

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultMaxHeaderBytes is 1 MiB.
	DefaultMaxHeaderBytes = 1 << 20
)
