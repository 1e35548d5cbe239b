package wire

import "fmt"

// OpCode is the 2-byte packet type field defined in rfc1350.
type OpCode uint16

const (
	OpCodeRRQ OpCode = iota + 1
	OpCodeWRQ
	OpCodeDATA
	OpCodeACK
	OpCodeERROR
)

// ParseOpCode validates a wire value against the five known opcodes.
func ParseOpCode(v uint16) (OpCode, error) {
	op := OpCode(v)

	switch op {
	case OpCodeRRQ, OpCodeWRQ, OpCodeDATA, OpCodeACK, OpCodeERROR:
		return op, nil
	default:
		return 0, &InvalidOpcodeError{Reason: fmt.Sprintf("%d is not a known opcode", v)}
	}
}

func (o OpCode) String() string {
	switch o {
	case OpCodeRRQ:
		return "RRQ"
	case OpCodeWRQ:
		return "WRQ"
	case OpCodeDATA:
		return "DATA"
	case OpCodeACK:
		return "ACK"
	case OpCodeERROR:
		return "ERROR"
	default:
		return fmt.Sprintf("OpCode(%d)", uint16(o))
	}
}
