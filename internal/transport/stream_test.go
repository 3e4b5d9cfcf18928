package transport

import (
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/danmuck/sepdata/internal/protocol"
	"github.com/danmuck/sepdata/internal/protocol/fields"
	"github.com/danmuck/sepdata/internal/protocol/frame"
	"github.com/danmuck/sepdata/internal/protocol/variant"
	"github.com/danmuck/sepdata/internal/testutil/testlog"
	"github.com/google/go-cmp/cmp"
)

// step is one scripted result: data to deliver, or an error when err is set.
type step struct {
	data []byte
	err  error
}

// scriptSource replays steps in order. A data step larger than the caller's
// buffer is delivered across several reads. After the script it blocks.
type scriptSource struct {
	steps []step
	reads int
}

func (s *scriptSource) Read(p []byte) (int, error) {
	s.reads++
	if len(s.steps) == 0 {
		return 0, ErrWouldBlock
	}
	st := &s.steps[0]
	if st.err != nil {
		s.steps = s.steps[1:]
		return 0, st.err
	}
	n := copy(p, st.data)
	st.data = st.data[n:]
	if len(st.data) == 0 {
		s.steps = s.steps[1:]
	}
	return n, nil
}

func data(b ...[]byte) []step {
	out := make([]step, 0, len(b))
	for _, x := range b {
		out = append(out, step{data: x})
	}
	return out
}

var wouldBlock = step{err: ErrWouldBlock}

func frameNumber(n uint32) []byte {
	b := []byte{0x53, 0x45, 0x50, 0x44, 0x00, 0x04, 0x00, 0x08, 0x00, 0x01, 0x00, 0x04}
	return binary.BigEndian.AppendUint32(b, n)
}

func wantFrame(n uint32) frame.Packet {
	return frame.Packet{{ID: fields.FrameNumber, Value: variant.U32(n)}}
}

func mustNext(t *testing.T, s *StreamReader) frame.Packet {
	t.Helper()
	pkt, err := s.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	return pkt
}

func TestStreamReaderSinglePacket(t *testing.T) {
	testlog.Start(t)
	src := &scriptSource{steps: data(frameNumber(17819))}
	s := NewStreamReader(src, StreamOptions{})
	if diff := cmp.Diff(wantFrame(17819), mustNext(t, s)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if s.Buffered() != 0 {
		t.Fatalf("buffered %d after whole packet", s.Buffered())
	}
	if _, err := s.Next(); !errors.Is(err, ErrWouldBlock) {
		t.Fatalf("expected ErrWouldBlock, got %v", err)
	}
}

func TestStreamReaderBackToBackPackets(t *testing.T) {
	testlog.Start(t)
	var all []byte
	for i := uint32(1); i <= 5; i++ {
		all = append(all, frameNumber(i)...)
	}
	s := NewStreamReader(&scriptSource{steps: data(all)}, StreamOptions{BufferSize: 8})
	for i := uint32(1); i <= 5; i++ {
		if diff := cmp.Diff(wantFrame(i), mustNext(t, s)); diff != "" {
			t.Fatalf("packet %d (-want +got):\n%s", i, diff)
		}
	}
	if st := s.Stats(); st.Packets != 5 || st.SkippedBytes != 0 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}

func TestStreamReaderResyncSkipsGarbageOneByteAtATime(t *testing.T) {
	testlog.Start(t)
	for k := 0; k <= 12; k++ {
		garbage := make([]byte, k)
		for i := range garbage {
			garbage[i] = byte(0xA0 + i)
		}
		in := append(garbage, frameNumber(17819)...)
		s := NewStreamReader(&scriptSource{steps: data(in)}, StreamOptions{BufferSize: 4})
		if diff := cmp.Diff(wantFrame(17819), mustNext(t, s)); diff != "" {
			t.Fatalf("k=%d (-want +got):\n%s", k, diff)
		}
		if got := s.Stats().SkippedBytes; got != uint64(k) {
			t.Fatalf("k=%d: skipped %d", k, got)
		}
	}
}

func TestStreamReaderResyncOnPartialMagic(t *testing.T) {
	testlog.Start(t)
	// "SEP" then a real packet: the false start must cost exactly 3 bytes.
	in := append([]byte("SEP"), frameNumber(9)...)
	s := NewStreamReader(&scriptSource{steps: data(in)}, StreamOptions{})
	if diff := cmp.Diff(wantFrame(9), mustNext(t, s)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if got := s.Stats().SkippedBytes; got != 3 {
		t.Fatalf("skipped %d, want 3", got)
	}
}

func TestStreamReaderWouldBlockIsIdempotent(t *testing.T) {
	testlog.Start(t)
	pkt := frameNumber(17819)
	src := &scriptSource{steps: []step{
		{data: pkt[:5]}, wouldBlock,
		{data: pkt[5:10]}, wouldBlock, wouldBlock,
		{data: pkt[10:]},
	}}
	s := NewStreamReader(src, StreamOptions{})

	for i := 0; i < 3; i++ {
		if _, err := s.Next(); !errors.Is(err, ErrWouldBlock) {
			t.Fatalf("call %d: expected ErrWouldBlock, got %v", i, err)
		}
	}
	if s.Buffered() != 10 {
		t.Fatalf("partial bytes lost: buffered %d, want 10", s.Buffered())
	}
	if diff := cmp.Diff(wantFrame(17819), mustNext(t, s)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if st := s.Stats(); st.WouldBlocks != 3 || st.SkippedBytes != 0 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}

func TestStreamReaderHeaderNotConsumedUntilBodyArrives(t *testing.T) {
	testlog.Start(t)
	pkt := frameNumber(3)
	src := &scriptSource{steps: []step{{data: pkt[:protocol.HeaderSize]}, wouldBlock, {data: pkt[protocol.HeaderSize:]}}}
	s := NewStreamReader(src, StreamOptions{})
	if _, err := s.Next(); !errors.Is(err, ErrWouldBlock) {
		t.Fatalf("expected ErrWouldBlock, got %v", err)
	}
	if s.Buffered() != protocol.HeaderSize {
		t.Fatalf("header should stay buffered, have %d", s.Buffered())
	}
	if diff := cmp.Diff(wantFrame(3), mustNext(t, s)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestStreamReaderInvalidBodyIsReportedThenSkipped(t *testing.T) {
	testlog.Start(t)
	bad := []byte{0x53, 0x45, 0x50, 0x44, 0x00, 0x04, 0x00, 0x09, 0x00, 0x01, 0x00, 0x05, 0x00, 0x00, 0x45, 0x9B, 0x00}
	s := NewStreamReader(&scriptSource{steps: data(bad, frameNumber(4))}, StreamOptions{})
	_, err := s.Next()
	if !errors.Is(err, frame.ErrInvalidBody) || !errors.Is(err, protocol.ErrInvalidLength) {
		t.Fatalf("expected invalid body, got %v", err)
	}
	if diff := cmp.Diff(wantFrame(4), mustNext(t, s)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if st := s.Stats(); st.InvalidPackets != 1 || st.Packets != 1 || st.SkippedBytes != 0 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}

func TestStreamReaderSourceErrorsSurface(t *testing.T) {
	testlog.Start(t)
	pkt := frameNumber(1)
	s := NewStreamReader(&scriptSource{steps: []step{{data: pkt[:4]}, {err: io.EOF}}}, StreamOptions{})
	if _, err := s.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if s.Buffered() != 4 {
		t.Fatalf("bytes before the error must stay buffered, have %d", s.Buffered())
	}
}

func TestStreamReaderCompactsBeforeGrowing(t *testing.T) {
	testlog.Start(t)
	src := &scriptSource{steps: data([]byte{1, 2, 3, 4, 5, 6, 7, 8}, []byte{9, 10, 11, 12})}
	s := NewStreamReader(src, StreamOptions{BufferSize: 8})
	if _, err := s.Read(6); err != nil {
		t.Fatalf("read: %v", err)
	}
	b, err := s.Peek(6)
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if diff := cmp.Diff([]byte{7, 8, 9, 10, 11, 12}, b); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if len(s.buf) != 8 {
		t.Fatalf("compaction should have avoided growth, cap %d", len(s.buf))
	}

	if _, err := s.Peek(9); !errors.Is(err, ErrWouldBlock) {
		t.Fatalf("expected ErrWouldBlock, got %v", err)
	}
	if len(s.buf) != 16 {
		t.Fatalf("buffer should double to 16, got %d", len(s.buf))
	}
}

func TestStreamReaderGrowsForLargePacket(t *testing.T) {
	testlog.Start(t)
	name := make([]byte, 3000)
	for i := range name {
		name[i] = 'x'
	}
	payload := binary.BigEndian.AppendUint16(nil, uint16(len(name)))
	payload = append(payload, name...)
	body := binary.BigEndian.AppendUint16(nil, uint16(fields.KeyboardState))
	body = binary.BigEndian.AppendUint16(body, uint16(len(payload)))
	body = append(body, payload...)
	pkt := append([]byte{0x53, 0x45, 0x50, 0x44, 0x00, 0x04}, binary.BigEndian.AppendUint16(nil, uint16(len(body)))...)
	pkt = append(pkt, body...)

	s := NewStreamReader(&scriptSource{steps: data(pkt)}, StreamOptions{BufferSize: 16})
	got := mustNext(t, s)
	text, err := got[0].Text()
	if err != nil || text != string(name) {
		t.Fatalf("unexpected keyboard state: len=%d err=%v", len(text), err)
	}
}

func TestStreamReaderConsumePanicsPastBuffered(t *testing.T) {
	testlog.Start(t)
	s := NewStreamReader(&scriptSource{}, StreamOptions{})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	s.Consume(1)
}

func TestStreamReaderReadCopies(t *testing.T) {
	testlog.Start(t)
	s := NewStreamReader(&scriptSource{steps: data([]byte("SEPDxx"))}, StreamOptions{})
	b, err := s.Read(4)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != protocol.Magic || s.Buffered() != 2 {
		t.Fatalf("unexpected read %q buffered=%d", b, s.Buffered())
	}
}
