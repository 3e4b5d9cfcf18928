package client

import (
	"fmt"
	"net"
	"strconv"

	"github.com/danmuck/sepdata/internal/protocol/frame"
	"github.com/danmuck/sepdata/internal/transport"
	"github.com/rs/zerolog/log"
)

// TCPClient reads a packet stream from a TCP server.
type TCPClient struct {
	machine
	addr   string
	cfg    Config
	conn   net.Conn
	reader packetReader
}

func NewTCPClient(host string, port uint16, cfg Config) *TCPClient {
	return &TCPClient{
		machine: machine{kind: "TCPClient"},
		addr:    net.JoinHostPort(host, strconv.Itoa(int(port))),
		cfg:     cfg,
	}
}

// Connect dials the server. On failure the client stays pending and Connect
// may be retried.
func (c *TCPClient) Connect() error {
	c.expect("Connect", StatePending)
	d := net.Dialer{Timeout: c.cfg.ConnectTimeout}
	conn, err := d.Dial("tcp", c.addr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}
	src, err := transport.NewStreamSource(conn)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}
	c.conn = conn
	c.reader = transport.NewStreamReader(src, transport.StreamOptions{
		Label:      "tcp",
		BufferSize: c.cfg.BufferSize,
		Parser:     c.cfg.parser(),
	})
	c.state = StateConnected
	log.Info().Str("remote", conn.RemoteAddr().String()).Msg("tcp connected")
	return nil
}

func (c *TCPClient) Next() (frame.Packet, error) {
	c.expect("Next", StateConnected)
	pkt, err := c.reader.Next()
	if err != nil {
		return nil, classify(err)
	}
	return pkt, nil
}

// Disconnect closes the socket. The client is disconnected even when close
// reports an error.
func (c *TCPClient) Disconnect() error {
	c.expect("Disconnect", StateConnected)
	err := c.conn.Close()
	c.state = StateDisconnected
	log.Info().Str("remote", c.addr).Err(err).Msg("tcp disconnected")
	return closeFailed(err)
}

// Stats reports reader counters; zero before Connect.
func (c *TCPClient) Stats() transport.Stats {
	if c.reader == nil {
		return transport.Stats{}
	}
	return c.reader.Stats()
}
