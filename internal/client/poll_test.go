package client

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/danmuck/sepdata/internal/protocol/frame"
	"github.com/danmuck/sepdata/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

type result struct {
	pkt frame.Packet
	err error
}

// fakeClient returns scripted results from Next, then blocks forever.
type fakeClient struct {
	results []result
	calls   int
}

func (f *fakeClient) Connect() error    { return nil }
func (f *fakeClient) Disconnect() error { return nil }

func (f *fakeClient) Next() (frame.Packet, error) {
	f.calls++
	if len(f.results) == 0 {
		return nil, ErrWouldBlock
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r.pkt, r.err
}

func TestPollDeliversPacketsAndSkipsInvalid(t *testing.T) {
	testlog.Start(t)
	boom := errors.New("socket gone")
	c := &fakeClient{results: []result{
		{pkt: wantFrame(1)},
		{err: ErrWouldBlock},
		{err: errors.Join(ErrInvalidPacket, frame.ErrInvalidBody)},
		{pkt: wantFrame(2)},
		{err: errors.Join(ErrReadFailed, boom)},
	}}
	var got []frame.Packet
	err := Poll(context.Background(), c, BackoffConfig{InitialDelay: time.Microsecond}, func(p frame.Packet) error {
		got = append(got, p)
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.Len(t, got, 2)
	require.Equal(t, 5, c.calls)
}

func TestPollStopsOnCallbackError(t *testing.T) {
	testlog.Start(t)
	stop := errors.New("enough")
	c := &fakeClient{results: []result{{pkt: wantFrame(1)}, {pkt: wantFrame(2)}}}
	err := Poll(context.Background(), c, DefaultBackoff(), func(frame.Packet) error { return stop })
	require.ErrorIs(t, err, stop)
	require.Equal(t, 1, c.calls)
}

func TestPollHonoursCancellation(t *testing.T) {
	testlog.Start(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	c := &fakeClient{}
	err := Poll(ctx, c, BackoffConfig{InitialDelay: time.Millisecond, Multiplier: 2, MaxDelay: 5 * time.Millisecond}, func(frame.Packet) error {
		t.Fatalf("no packets expected")
		return nil
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Greater(t, c.calls, 1)
}

func TestIdleDelay(t *testing.T) {
	cfg := BackoffConfig{InitialDelay: time.Millisecond, Multiplier: 2, MaxDelay: 10 * time.Millisecond}
	require.Zero(t, IdleDelay(cfg, 0, nil), "no idle polls, no sleep")
	require.Equal(t, time.Millisecond, IdleDelay(cfg, 1, nil))
	require.Equal(t, 4*time.Millisecond, IdleDelay(cfg, 3, nil))
	require.Equal(t, 10*time.Millisecond, IdleDelay(cfg, 20, nil))
	require.Equal(t, 10*time.Millisecond, IdleDelay(cfg, 1<<30, nil))

	cfg.Multiplier = 0.5
	require.Equal(t, time.Millisecond, IdleDelay(cfg, 4, nil), "multiplier at or below 1 holds the delay")

	cfg.Multiplier = 2
	cfg.MaxDelay = 0
	require.Equal(t, 8*time.Millisecond, IdleDelay(cfg, 4, nil), "no cap")

	cfg.MaxDelay = 10 * time.Millisecond
	cfg.Jitter = true
	require.Equal(t, 2*time.Millisecond, IdleDelay(cfg, 2, nil), "nil rng disables jitter")
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		d := IdleDelay(cfg, 2, rng)
		require.GreaterOrEqual(t, d, time.Millisecond)
		require.LessOrEqual(t, d, 2*time.Millisecond)
	}
}

func TestPollResetsIdleOnInvalidPacket(t *testing.T) {
	testlog.Start(t)
	boom := errors.New("boom")
	c := &fakeClient{results: []result{
		{err: ErrWouldBlock},
		{err: ErrWouldBlock},
		{err: errors.Join(ErrInvalidPacket, frame.ErrInvalidHeader)},
		{err: ErrWouldBlock},
		{err: boom},
	}}
	// Without a reset the third empty poll would sleep 10s.
	cfg := BackoffConfig{InitialDelay: time.Millisecond, Multiplier: 100, MaxDelay: time.Minute}
	start := time.Now()
	err := Poll(context.Background(), c, cfg, func(frame.Packet) error { return nil })
	require.ErrorIs(t, err, boom)
	require.Less(t, time.Since(start), 2*time.Second)
}
