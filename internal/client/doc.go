// Package client connects to an SEPD telemetry source and yields packets.
//
// Each client moves through Pending, Connected and Disconnected exactly once.
// Next never blocks: it returns one packet or ErrWouldBlock. Calling an
// operation in the wrong state is a programming error and panics.
//
// Errors are wrapped as "category: cause", so both the client sentinel and
// the underlying network or protocol error match with errors.Is.
package client
