// Package ipc provides the local socket a running clipmate daemon holds so
// that a second daemon refuses to start and one-shot commands can tell
// whether a daemon is recording.
//
// Two daemons appending to the same history file would each rewrite it from
// their own in-memory copy and silently drop the other's entries.
package ipc

import (
	"errors"
	"fmt"
	"net"
	"os"
)

// ErrAlreadyRunning is returned by Listen when another daemon holds the socket.
var ErrAlreadyRunning = errors.New("clipmate daemon already running")

// SocketPath returns the platform-appropriate socket path.
//
//   - Linux / macOS: $XDG_RUNTIME_DIR/clipmate.sock, else $TMPDIR/clipmate.sock
//   - Windows:       \\.\pipe\clipmate
//
// $CLIPMATE_SOCKET overrides both.
func SocketPath() string {
	if s := os.Getenv("CLIPMATE_SOCKET"); s != "" {
		return s
	}
	return socketPath()
}

// IsRunning reports whether a daemon appears to be listening. It does a cheap
// dial-and-close; no data is exchanged.
func IsRunning() bool {
	c, err := dialIPC(SocketPath())
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

// Listen claims the socket for this process. A stale socket file left by a
// killed daemon is replaced.
func Listen() (net.Listener, error) {
	path := SocketPath()
	if IsRunning() {
		return nil, fmt.Errorf("%w (%s)", ErrAlreadyRunning, path)
	}
	ln, err := listenIPC(path)
	if errors.Is(err, ErrAlreadyRunning) {
		return nil, fmt.Errorf("%w (%s)", ErrAlreadyRunning, path)
	}
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", path, err)
	}
	return ln, nil
}

// Serve accepts and immediately closes connections until ln is closed.
// Liveness is the whole protocol.
func Serve(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		_ = conn.Close()
	}
}
