package wire

import "fmt"

// InvalidPacketError reports malformed field content: text that is not
// valid UTF-8, a string field missing its null terminator, a truncated
// fixed-width field or a value outside a closed enumeration.
type InvalidPacketError struct {
	Reason string
}

func (e *InvalidPacketError) Error() string {
	return fmt.Sprintf("invalid packet: %s", e.Reason)
}

// InvalidPacketLengthError reports a packet whose size violates a fixed
// bound. Expected carries the bound: the maximum payload size for DATA,
// the total packet size for ACK.
type InvalidPacketLengthError struct {
	Expected uint16
}

func (e *InvalidPacketLengthError) Error() string {
	return fmt.Sprintf("invalid packet length: expected %d bytes", e.Expected)
}

// InvalidOpcodeError reports a missing, truncated or unrecognized opcode
// field.
type InvalidOpcodeError struct {
	Reason string
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode: %s", e.Reason)
}
