package client

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/danmuck/sepdata/internal/protocol/frame"
	"github.com/rs/zerolog/log"
)

// Poll drives c until ctx is done, passing each packet to fn.
//
// Consecutive ErrWouldBlock results sleep per IdleDelay. Invalid packets are
// logged and skipped. A read failure or an error from fn stops the loop and is
// returned. Cancellation returns ctx.Err().
func Poll(ctx context.Context, c Client, cfg BackoffConfig, fn func(frame.Packet) error) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	idle := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		pkt, err := c.Next()
		switch {
		case err == nil:
			idle = 0
			if err := fn(pkt); err != nil {
				return err
			}
		case errors.Is(err, ErrWouldBlock):
			idle++
			if err := sleep(ctx, IdleDelay(cfg, idle, rng)); err != nil {
				return err
			}
		case errors.Is(err, ErrInvalidPacket):
			idle = 0
			log.Warn().Err(err).Msg("skipping invalid packet")
		default:
			return err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
