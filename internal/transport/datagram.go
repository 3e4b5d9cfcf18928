package transport

import (
	"errors"
	"io"

	"github.com/danmuck/sepdata/internal/observability"
	"github.com/danmuck/sepdata/internal/protocol"
	"github.com/danmuck/sepdata/internal/protocol/frame"
	"github.com/rs/zerolog/log"
)

// DatagramReader parses one packet per datagram. A datagram that fails to
// parse is dropped on its own; nothing carries over to the next call.
type DatagramReader struct {
	src    io.Reader
	buf    []byte
	label  string
	parser frame.Parser
	stats  Stats
}

// NewDatagramReader parses one packet per datagram read from src.
func NewDatagramReader(src io.Reader, parser frame.Parser) *DatagramReader {
	return &DatagramReader{
		src:    src,
		buf:    make([]byte, protocol.MaxDatagramSize),
		label:  "udp",
		parser: parser,
	}
}

func (d *DatagramReader) Stats() Stats { return d.stats }

// Next receives one datagram and parses it. Bytes after the packet are ignored.
func (d *DatagramReader) Next() (frame.Packet, error) {
	n, err := d.src.Read(d.buf)
	if err != nil {
		if errors.Is(err, ErrWouldBlock) {
			d.stats.WouldBlocks++
			observability.RecordWouldBlock(d.label)
		}
		return nil, err
	}
	pkt, used, err := d.parser.ParsePacket(d.buf[:n])
	if err != nil {
		d.stats.InvalidPackets++
		observability.RecordInvalidPacket(d.label)
		log.Debug().Str("reader", d.label).Int("size", n).Err(err).Msg("dropped datagram")
		return nil, err
	}
	if used < n {
		log.Debug().Str("reader", d.label).Int("trailing", n-used).Msg("ignored bytes after packet")
	}
	d.stats.Packets++
	observability.RecordPacket(d.label, used)
	return pkt, nil
}
