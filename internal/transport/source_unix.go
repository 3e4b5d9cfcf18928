//go:build unix

package transport

import (
	"errors"
	"io"
	"net"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// rawSource reads straight from the socket descriptor. The runtime keeps
// network descriptors in non-blocking mode, so a read with nothing pending
// fails with EAGAIN instead of parking the goroutine.
type rawSource struct {
	rc     syscall.RawConn
	stream bool
}

// NewStreamSource adapts a connected stream socket. A zero-byte read means the
// peer closed and is reported as io.EOF.
func NewStreamSource(conn net.Conn) (io.Reader, error) {
	return newSource(conn, true)
}

// NewDatagramSource adapts a datagram socket. Each Read returns one datagram;
// zero-length datagrams are valid.
func NewDatagramSource(conn net.Conn) (io.Reader, error) {
	return newSource(conn, false)
}

func newSource(conn net.Conn, stream bool) (io.Reader, error) {
	sc, ok := conn.(syscall.Conn)
	if !ok {
		return &deadlineSource{conn: conn, stream: stream}, nil
	}
	rc, err := sc.SyscallConn()
	if err != nil {
		return nil, err
	}
	return &rawSource{rc: rc, stream: stream}, nil
}

func (s *rawSource) Read(p []byte) (int, error) {
	var (
		n     int
		opErr error
	)
	err := s.rc.Read(func(fd uintptr) bool {
		n, opErr = unix.Read(int(fd), p)
		return true
	})
	if err != nil {
		return 0, err
	}
	if opErr != nil {
		if errors.Is(opErr, unix.EAGAIN) || errors.Is(opErr, unix.EWOULDBLOCK) || errors.Is(opErr, unix.EINTR) {
			return 0, ErrWouldBlock
		}
		return 0, os.NewSyscallError("read", opErr)
	}
	if n == 0 && s.stream && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}
