package journald

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// isMessageTooLarge detects datagrams rejected for exceeding the socket
// buffer size.
func isMessageTooLarge(err error) (tooLarge bool) {
	tooLarge = errors.Is(err, unix.EMSGSIZE) || errors.Is(err, unix.ENOBUFS)
	return
}

// sendViaMemfd writes the payload into a sealed memfd and passes the file
// descriptor to the journal via SCM_RIGHTS. The journal requires all seals
// before it will read the file.
func (h *Handler) sendViaMemfd(payload []byte) (err error) {
	fd, err := unix.MemfdCreate("fmtlog-journald", unix.MFD_ALLOW_SEALING|unix.MFD_CLOEXEC)
	if err != nil {
		err = fmt.Errorf("failed memfd creation: %v", err)
		return
	}
	defer unix.Close(fd)

	written := 0
	for written < len(payload) {
		var n int
		n, err = unix.Write(fd, payload[written:])
		if err != nil {
			err = fmt.Errorf("failed memfd write: %v", err)
			return
		}
		written += n
	}

	_, err = unix.FcntlInt(uintptr(fd), unix.F_ADD_SEALS,
		unix.F_SEAL_SHRINK|unix.F_SEAL_GROW|unix.F_SEAL_WRITE|unix.F_SEAL_SEAL)
	if err != nil {
		err = fmt.Errorf("failed memfd sealing: %v", err)
		return
	}

	rights := unix.UnixRights(fd)
	_, _, err = h.conn.WriteMsgUnix(nil, rights, nil)
	if err != nil {
		err = fmt.Errorf("failed memfd handoff: %v", err)
		return
	}

	return
}
