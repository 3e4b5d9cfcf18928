package client

import (
	"fmt"
	"os"

	"github.com/danmuck/sepdata/internal/protocol/frame"
	"github.com/danmuck/sepdata/internal/transport"
	"github.com/rs/zerolog/log"
)

// CaptureClient replays a raw byte capture of a TCP stream. It never reports
// ErrWouldBlock; the end of the file surfaces as ErrReadFailed wrapping io.EOF.
type CaptureClient struct {
	machine
	path   string
	cfg    Config
	file   *os.File
	reader packetReader
}

func NewCaptureClient(path string, cfg Config) *CaptureClient {
	return &CaptureClient{
		machine: machine{kind: "CaptureClient"},
		path:    path,
		cfg:     cfg,
	}
}

func (c *CaptureClient) Connect() error {
	c.expect("Connect", StatePending)
	f, err := os.Open(c.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}
	c.file = f
	c.reader = transport.NewStreamReader(f, transport.StreamOptions{
		Label:      "capture",
		BufferSize: c.cfg.BufferSize,
		Parser:     c.cfg.parser(),
	})
	c.state = StateConnected
	log.Debug().Str("path", c.path).Msg("capture opened")
	return nil
}

func (c *CaptureClient) Next() (frame.Packet, error) {
	c.expect("Next", StateConnected)
	pkt, err := c.reader.Next()
	if err != nil {
		return nil, classify(err)
	}
	return pkt, nil
}

func (c *CaptureClient) Disconnect() error {
	c.expect("Disconnect", StateConnected)
	err := c.file.Close()
	c.state = StateDisconnected
	return closeFailed(err)
}

func (c *CaptureClient) Stats() transport.Stats {
	if c.reader == nil {
		return transport.Stats{}
	}
	return c.reader.Stats()
}
