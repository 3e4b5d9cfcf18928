package client

import (
	"errors"

	"github.com/danmuck/sepdata/internal/transport"
)

var (
	ErrConnectFailed    = errors.New("client: connect failed")
	ErrDisconnectFailed = errors.New("client: disconnect failed")
	ErrReadFailed       = errors.New("client: read failed")
	ErrInvalidPacket    = errors.New("client: invalid packet")

	// ErrWouldBlock means no complete packet is available yet.
	ErrWouldBlock = transport.ErrWouldBlock
)
