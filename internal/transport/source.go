package transport

import (
	"errors"
	"io"
	"net"
	"os"
	"time"
)

// pollTimeout is how long a deadline-based read may wait before it reports
// ErrWouldBlock.
const pollTimeout = time.Millisecond

// deadlineSource emulates a non-blocking read with a very short deadline.
// It serves connections that expose no raw descriptor. On a stream an empty
// read means the peer closed.
type deadlineSource struct {
	conn   net.Conn
	stream bool
}

func (s *deadlineSource) Read(p []byte) (int, error) {
	if err := s.conn.SetReadDeadline(time.Now().Add(pollTimeout)); err != nil {
		return 0, err
	}
	n, err := s.conn.Read(p)
	if err == nil {
		if n == 0 && s.stream && len(p) > 0 {
			return 0, io.EOF
		}
		return n, nil
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		if n > 0 {
			return n, nil
		}
		return 0, ErrWouldBlock
	}
	return n, err
}
