package transport

// Stats counts what a reader has seen since it was created.
type Stats struct {
	Packets        uint64
	InvalidPackets uint64
	// SkippedBytes is the number of bytes discarded while searching for a
	// packet header.
	SkippedBytes uint64
	WouldBlocks  uint64
}
