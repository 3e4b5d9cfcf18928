package client

import (
	"fmt"
	"net"

	"github.com/danmuck/sepdata/internal/protocol/frame"
	"github.com/danmuck/sepdata/internal/transport"
	"github.com/rs/zerolog/log"
)

// UDPClient receives one packet per datagram on a local port.
type UDPClient struct {
	machine
	port   uint16
	cfg    Config
	conn   *net.UDPConn
	reader packetReader
}

func NewUDPClient(port uint16, cfg Config) *UDPClient {
	return &UDPClient{
		machine: machine{kind: "UDPClient"},
		port:    port,
		cfg:     cfg,
	}
}

// Connect binds 0.0.0.0:port. Port 0 picks a free port; see LocalAddr.
func (c *UDPClient) Connect() error {
	c.expect("Connect", StatePending)
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: int(c.port)})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}
	src, err := transport.NewDatagramSource(conn)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}
	c.conn = conn
	c.reader = transport.NewDatagramReader(src, c.cfg.parser())
	c.state = StateConnected
	log.Info().Str("local", conn.LocalAddr().String()).Msg("udp bound")
	return nil
}

func (c *UDPClient) Next() (frame.Packet, error) {
	c.expect("Next", StateConnected)
	pkt, err := c.reader.Next()
	if err != nil {
		return nil, classify(err)
	}
	return pkt, nil
}

func (c *UDPClient) Disconnect() error {
	c.expect("Disconnect", StateConnected)
	err := c.conn.Close()
	c.state = StateDisconnected
	log.Info().Err(err).Msg("udp closed")
	return closeFailed(err)
}

// LocalAddr returns the bound address, or nil unless connected.
func (c *UDPClient) LocalAddr() net.Addr {
	if c.state != StateConnected {
		return nil
	}
	return c.conn.LocalAddr()
}

func (c *UDPClient) Stats() transport.Stats {
	if c.reader == nil {
		return transport.Stats{}
	}
	return c.reader.Stats()
}
