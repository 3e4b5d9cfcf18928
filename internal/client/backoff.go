package client

import (
	"math/rand"
	"time"
)

// IdleDelay returns how long Poll sleeps after idle consecutive ErrWouldBlock
// results. No idle polls means no sleep. The first empty poll waits
// InitialDelay and each further one multiplies the wait by Multiplier, up to
// MaxDelay. Poll resets the count whenever bytes turn into a packet, valid or
// not.
//
// With Jitter set and a non-nil rng the delay is drawn from [d/2, d].
func IdleDelay(cfg BackoffConfig, idle int, rng *rand.Rand) time.Duration {
	if idle <= 0 || cfg.InitialDelay <= 0 {
		return 0
	}
	d := cfg.InitialDelay
	for i := 1; i < idle; i++ {
		if cfg.Multiplier <= 1 {
			break
		}
		next := time.Duration(float64(d) * cfg.Multiplier)
		if next <= d {
			// overflow
			break
		}
		d = next
		if cfg.MaxDelay > 0 && d >= cfg.MaxDelay {
			break
		}
	}
	if cfg.MaxDelay > 0 && d > cfg.MaxDelay {
		d = cfg.MaxDelay
	}
	if cfg.Jitter && rng != nil {
		half := d / 2
		d = half + time.Duration(rng.Int63n(int64(d-half)+1))
	}
	return d
}
