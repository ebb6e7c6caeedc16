//go:build windows

package ipc

import (
	"net"

	"github.com/Microsoft/go-winio"
)

const pipeName = `\\.\pipe\clipmate`

func socketPath() string { return pipeName }

// Named pipes vanish with their owner, and ListenPipe fails while another
// process holds the name, so no lock file is needed.
func listenIPC(path string) (net.Listener, error) {
	return winio.ListenPipe(path, nil)
}

func dialIPC(path string) (net.Conn, error) {
	return winio.DialPipe(path, nil)
}
