package transport

import (
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/sepdata/internal/observability"
	"github.com/danmuck/sepdata/internal/protocol"
	"github.com/danmuck/sepdata/internal/protocol/frame"
	"github.com/rs/zerolog/log"
)

const defaultBufferSize = 4096

// StreamOptions configures a StreamReader. The zero value is usable.
type StreamOptions struct {
	// Label names the reader in logs and metrics, e.g. "tcp" or "capture".
	Label string
	// BufferSize is the initial buffer capacity.
	BufferSize int
	Parser     frame.Parser
}

// StreamReader buffers a byte stream and cuts it into packets.
//
// Unread bytes live in buf[r:w]. The buffer is compacted before it is grown,
// and grows by doubling.
type StreamReader struct {
	src    io.Reader
	buf    []byte
	r, w   int
	label  string
	parser frame.Parser
	stats  Stats
}

// NewStreamReader frames packets out of the byte stream src.
func NewStreamReader(src io.Reader, opts StreamOptions) *StreamReader {
	size := opts.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}
	label := opts.Label
	if label == "" {
		label = "stream"
	}
	return &StreamReader{
		src:    src,
		buf:    make([]byte, size),
		label:  label,
		parser: opts.Parser,
	}
}

// Buffered returns the number of unread bytes held.
func (s *StreamReader) Buffered() int { return s.w - s.r }

// Stats returns the reader's counters so far.
func (s *StreamReader) Stats() Stats { return s.stats }

// Peek returns the next n bytes without consuming them, reading from the
// source as needed. The slice is valid until the next call that reads.
// Bytes read before an error stay buffered.
func (s *StreamReader) Peek(n int) ([]byte, error) {
	if err := s.fill(n); err != nil {
		return nil, err
	}
	return s.buf[s.r : s.r+n], nil
}

// Consume discards n buffered bytes. Consuming more than Buffered is a
// programming error and panics.
func (s *StreamReader) Consume(n int) {
	if n < 0 || n > s.w-s.r {
		panic(fmt.Sprintf("transport: consume %d bytes with %d buffered", n, s.w-s.r))
	}
	s.r += n
	if s.r == s.w {
		s.r, s.w = 0, 0
	}
}

// Read returns a copy of the next n bytes and consumes them.
func (s *StreamReader) Read(n int) ([]byte, error) {
	b, err := s.Peek(n)
	if err != nil {
		return nil, err
	}
	out := append([]byte(nil), b...)
	s.Consume(n)
	return out, nil
}

func (s *StreamReader) fill(n int) error {
	if s.w-s.r >= n {
		return nil
	}
	s.reserve(n)
	for s.w-s.r < n {
		m, err := s.src.Read(s.buf[s.w:])
		s.w += m
		if err != nil {
			if s.w-s.r >= n {
				// Enough arrived; report the condition on the next fill.
				return nil
			}
			if errors.Is(err, ErrWouldBlock) {
				return ErrWouldBlock
			}
			return err
		}
		if m == 0 {
			return ErrWouldBlock
		}
	}
	return nil
}

// reserve makes room for n unread bytes starting at r.
func (s *StreamReader) reserve(n int) {
	if len(s.buf)-s.r >= n {
		return
	}
	if s.r > 0 {
		s.w = copy(s.buf, s.buf[s.r:s.w])
		s.r = 0
	}
	if len(s.buf) >= n {
		return
	}
	size := len(s.buf)
	if size == 0 {
		size = defaultBufferSize
	}
	for size < n {
		size *= 2
	}
	grown := make([]byte, size)
	copy(grown, s.buf[:s.w])
	s.buf = grown
}

// Next returns the next packet in the stream.
//
// Bytes that do not start a valid header are skipped one at a time until one
// does. Once a header is found nothing is consumed until the whole packet is
// buffered, so ErrWouldBlock can be retried without losing data. A packet
// whose body fails to parse is consumed and its error returned.
func (s *StreamReader) Next() (frame.Packet, error) {
	var skipped int
	defer func() {
		if skipped > 0 {
			s.stats.SkippedBytes += uint64(skipped)
			observability.RecordSkippedBytes(s.label, skipped)
			log.Debug().Str("reader", s.label).Int("skipped", skipped).Msg("resync")
		}
	}()

	for {
		hb, err := s.Peek(protocol.HeaderSize)
		if err != nil {
			return nil, s.readErr(err)
		}
		h, err := frame.ParseHeader(hb)
		if err != nil {
			s.Consume(1)
			skipped++
			continue
		}

		whole, err := s.Peek(h.Size())
		if err != nil {
			return nil, s.readErr(err)
		}
		pkt, err := s.parser.ParseBody(h, whole[protocol.HeaderSize:])
		s.Consume(h.Size())
		if err != nil {
			s.stats.InvalidPackets++
			observability.RecordInvalidPacket(s.label)
			log.Debug().Str("reader", s.label).Err(err).Msg("invalid packet body")
			return nil, err
		}
		s.stats.Packets++
		observability.RecordPacket(s.label, h.Size())
		return pkt, nil
	}
}

func (s *StreamReader) readErr(err error) error {
	if errors.Is(err, ErrWouldBlock) {
		s.stats.WouldBlocks++
		observability.RecordWouldBlock(s.label)
	}
	return err
}
