// Package transport turns non-blocking byte sources into SEPD packets.
//
// StreamReader frames a TCP byte stream. It keeps partial packets buffered
// across calls and resynchronizes on the packet magic after corruption or a
// mid-stream connect. DatagramReader treats each UDP datagram as exactly one
// packet and keeps no state between calls.
//
// Sources follow io.Reader with one extension: Read returns ErrWouldBlock
// when no data is available right now. NewStreamSource and NewDatagramSource
// adapt net connections to that contract without blocking.
package transport
