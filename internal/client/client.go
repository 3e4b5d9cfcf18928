package client

import (
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/sepdata/internal/protocol/frame"
	"github.com/danmuck/sepdata/internal/transport"
)

// Client is implemented by TCPClient, UDPClient and CaptureClient.
type Client interface {
	Connect() error
	Next() (frame.Packet, error)
	Disconnect() error
}

var (
	_ Client = (*TCPClient)(nil)
	_ Client = (*UDPClient)(nil)
	_ Client = (*CaptureClient)(nil)
)

type packetReader interface {
	Next() (frame.Packet, error)
	Stats() transport.Stats
}

// classify maps a reader error onto the client error categories.
func classify(err error) error {
	switch {
	case errors.Is(err, transport.ErrWouldBlock):
		return ErrWouldBlock
	case errors.Is(err, frame.ErrInvalidHeader), errors.Is(err, frame.ErrInvalidBody):
		return fmt.Errorf("%w: %w", ErrInvalidPacket, err)
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: peer closed: %w", ErrReadFailed, err)
	default:
		return fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
}

func closeFailed(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrDisconnectFailed, err)
}
