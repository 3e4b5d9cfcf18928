//go:build !unix

package transport

import (
	"io"
	"net"
)

// NewStreamSource polls conn with a short read deadline.
func NewStreamSource(conn net.Conn) (io.Reader, error) {
	return &deadlineSource{conn: conn, stream: true}, nil
}

// NewDatagramSource polls conn with a short read deadline.
func NewDatagramSource(conn net.Conn) (io.Reader, error) {
	return &deadlineSource{conn: conn, stream: false}, nil
}
