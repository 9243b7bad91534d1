// Journald backend: writes records to the systemd journal native socket.
// https://systemd.io/JOURNAL_NATIVE_PROTOCOL/
package journald

import (
	"fmt"
	"net"

	"fmtlog/pkg/sink"
)

// Creates new journald backend. identifier becomes SYSLOG_IDENTIFIER on
// every entry.
func New(identifier string, levels *sink.Levels) (handler *Handler, err error) {
	handler, err = newWithSocket(identifier, levels, socketPath)
	return
}

func newWithSocket(identifier string, levels *sink.Levels, path string) (handler *Handler, err error) {
	addr := &net.UnixAddr{Name: path, Net: "unixgram"}

	conn, err := net.DialUnix("unixgram", nil, addr)
	if err != nil {
		err = fmt.Errorf("failed journald socket dial: %v", err)
		return
	}

	handler = &Handler{
		conn:       conn,
		levels:     levels,
		identifier: identifier,
	}
	return
}

// Close releases the journal socket.
func (h *Handler) Close() (err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	err = h.conn.Close()
	return
}
