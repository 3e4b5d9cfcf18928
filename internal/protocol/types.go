package protocol

const (
	// Magic is the sync id opening every packet.
	Magic = "SEPD"

	// PacketType is the only packet type this decoder accepts.
	PacketType uint16 = 0x0004

	HeaderSize    = 4 + 2 + 2
	SubHeaderSize = 2 + 2

	// MaxDatagramSize bounds one UDP receive.
	MaxDatagramSize = 65535
)
