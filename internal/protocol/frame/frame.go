package frame

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/danmuck/sepdata/internal/protocol"
	"github.com/danmuck/sepdata/internal/protocol/fields"
)

var (
	ErrInvalidHeader = errors.New("frame: invalid packet header")
	ErrInvalidBody   = errors.New("frame: invalid packet body")
)

// Header is the fixed packet preamble. Magic and packet type are validated on
// parse and not retained.
type Header struct {
	Length uint16
}

// Size is the number of bytes the whole packet occupies on the wire.
func (h Header) Size() int {
	return protocol.HeaderSize + int(h.Length)
}

// SubHeader precedes every sub-packet payload.
type SubHeader struct {
	FieldID fields.ID
	Length  uint16
}

// Packet is the ordered list of fields carried by one packet. Ids may repeat.
type Packet []fields.Field

// SubPacketError reports which sub-packet invalidated a body.
type SubPacketError struct {
	Index   int
	Offset  int
	FieldID fields.ID
	Err     error
}

func (e *SubPacketError) Error() string {
	return fmt.Sprintf("sub-packet %d (%s) at offset %d: %v", e.Index, e.FieldID, e.Offset, e.Err)
}

func (e *SubPacketError) Unwrap() error { return e.Err }

// Parser parses packet bodies. The zero value is ready to use.
type Parser struct {
	Fields fields.Decoder
}

// ParseHeader validates the 8-byte preamble at the front of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < protocol.HeaderSize {
		return Header{}, fmt.Errorf("%w: %w: have %d of %d bytes", ErrInvalidHeader, protocol.ErrTruncated, len(b), protocol.HeaderSize)
	}
	if string(b[0:4]) != protocol.Magic {
		return Header{}, fmt.Errorf("%w: %w: % x", ErrInvalidHeader, protocol.ErrInvalidMagic, b[0:4])
	}
	if pt := binary.BigEndian.Uint16(b[4:6]); pt != protocol.PacketType {
		return Header{}, fmt.Errorf("%w: %w: 0x%04x", ErrInvalidHeader, protocol.ErrInvalidPacketType, pt)
	}
	return Header{Length: binary.BigEndian.Uint16(b[6:8])}, nil
}

// ParseSubHeader reads the 4-byte sub-packet header at the front of b.
func ParseSubHeader(b []byte) (SubHeader, error) {
	if len(b) < protocol.SubHeaderSize {
		return SubHeader{}, fmt.Errorf("%w: sub-packet header needs %d bytes, have %d", protocol.ErrTruncated, protocol.SubHeaderSize, len(b))
	}
	return SubHeader{
		FieldID: fields.ID(binary.BigEndian.Uint16(b[0:2])),
		Length:  binary.BigEndian.Uint16(b[2:4]),
	}, nil
}

// ParseBody parses a body with the default field decoder.
func ParseBody(h Header, b []byte) (Packet, error) {
	return Parser{}.ParseBody(h, b)
}

// ParsePacket parses one packet at the front of b with the default field decoder.
func ParsePacket(b []byte) (Packet, int, error) {
	return Parser{}.ParsePacket(b)
}

// ParseBody decodes the h.Length bytes at the front of b. Any failing
// sub-packet invalidates the whole body.
func (p Parser) ParseBody(h Header, b []byte) (Packet, error) {
	if len(b) < int(h.Length) {
		return nil, fmt.Errorf("%w: %w: body needs %d bytes, have %d", ErrInvalidBody, protocol.ErrTruncated, h.Length, len(b))
	}
	body := b[:h.Length]
	pkt := Packet{}
	for off, i := 0, 0; off < len(body); i++ {
		sh, err := ParseSubHeader(body[off:])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, &SubPacketError{Index: i, Offset: off, Err: err})
		}
		start := off + protocol.SubHeaderSize
		end := start + int(sh.Length)
		if end > len(body) {
			err := fmt.Errorf("%w: payload of %d bytes overruns body by %d", protocol.ErrInvalidLength, sh.Length, end-len(body))
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, &SubPacketError{Index: i, Offset: off, FieldID: sh.FieldID, Err: err})
		}
		f, err := p.Fields.Decode(sh.FieldID, body[start:end])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, &SubPacketError{Index: i, Offset: off, FieldID: sh.FieldID, Err: err})
		}
		pkt = append(pkt, f)
		off = end
	}
	return pkt, nil
}

// ParsePacket parses one whole packet from the front of b and reports how many
// bytes it occupied. Bytes past the packet are left alone.
func (p Parser) ParsePacket(b []byte) (Packet, int, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return nil, 0, err
	}
	pkt, err := p.ParseBody(h, b[protocol.HeaderSize:])
	if err != nil {
		return nil, 0, err
	}
	return pkt, h.Size(), nil
}
