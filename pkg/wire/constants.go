package wire

const (
	// MaxPayloadSize is the largest DATA payload rfc1350 allows.
	MaxPayloadSize = 512
	// DatagramSize is the largest well-formed datagram: 2 opcode + 2
	// block number + MaxPayloadSize.
	DatagramSize = 516
	// AckPacketSize is the exact size of an ACK: 2 opcode + 2 block number.
	AckPacketSize = 4
)
