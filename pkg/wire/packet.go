// Package wire implements the rfc1350 packet format: decoding a datagram
// into one of the five typed packet shapes and encoding a packet back into
// its exact byte layout. It carries no session state; every call transforms
// exactly one packet.
package wire

import "encoding/binary"

// Packet is one of the five rfc1350 message shapes: *ReadRequest,
// *WriteRequest, *Data, *Ack or *Error.
type Packet interface {
	OpCode() OpCode

	appendTo(b []byte) []byte
}

type ReadRequest struct {
	Filename string
	Mode     Mode
}

func (r *ReadRequest) OpCode() OpCode { return OpCodeRRQ }

type WriteRequest struct {
	Filename string
	Mode     Mode
}

func (w *WriteRequest) OpCode() OpCode { return OpCodeWRQ }

type Data struct {
	Payload  []byte
	BlockNum uint16
}

func (d *Data) OpCode() OpCode { return OpCodeDATA }

type Ack struct {
	BlockNum uint16
}

func (a *Ack) OpCode() OpCode { return OpCodeACK }

type Error struct {
	ErrMsg    string
	ErrorCode ErrCode
}

func (e *Error) OpCode() OpCode { return OpCodeERROR }

// Decode parses a single datagram. The first malformed field aborts the
// decode and is returned as one of the wire error types; there is no
// partial result. Trailing bytes after the mode or error message fields
// are ignored.
func Decode(datagram []byte) (Packet, error) {
	v, rest, ok := takeUint16(datagram)
	if !ok {
		return nil, &InvalidOpcodeError{Reason: "opcode is shorter than 2 bytes"}
	}

	opcode, err := ParseOpCode(v)
	if err != nil {
		return nil, err
	}

	switch opcode {
	case OpCodeRRQ:
		filename, mode, err := decodeRequest(rest)
		if err != nil {
			return nil, err
		}

		return &ReadRequest{Filename: filename, Mode: mode}, nil
	case OpCodeWRQ:
		filename, mode, err := decodeRequest(rest)
		if err != nil {
			return nil, err
		}

		return &WriteRequest{Filename: filename, Mode: mode}, nil
	case OpCodeDATA:
		blockNum, rest, err := parseBlockNum(rest)
		if err != nil {
			return nil, err
		}

		if len(rest) > MaxPayloadSize {
			return nil, &InvalidPacketLengthError{Expected: MaxPayloadSize}
		}

		payload := make([]byte, len(rest))
		copy(payload, rest)

		return &Data{BlockNum: blockNum, Payload: payload}, nil
	case OpCodeACK:
		blockNum, rest, err := parseBlockNum(rest)
		if err != nil {
			return nil, err
		}

		if len(rest) > 0 {
			return nil, &InvalidPacketLengthError{Expected: AckPacketSize}
		}

		return &Ack{BlockNum: blockNum}, nil
	case OpCodeERROR:
		errCode, rest, err := parseErrCode(rest)
		if err != nil {
			return nil, err
		}

		errMsg, _, err := parseErrMsg(rest)
		if err != nil {
			return nil, err
		}

		return &Error{ErrorCode: errCode, ErrMsg: errMsg}, nil
	default:
		// unreachable, ParseOpCode admits exactly the five opcodes
		return nil, &InvalidOpcodeError{Reason: opcode.String()}
	}
}

func decodeRequest(input []byte) (string, Mode, error) {
	filename, rest, err := parseFilename(input)
	if err != nil {
		return "", 0, err
	}

	mode, _, err := parseMode(rest)
	if err != nil {
		return "", 0, err
	}

	return filename, mode, nil
}

// Encode serializes a packet into its wire layout. It is total: the DATA
// payload bound and the no-embedded-null invariant on string fields are
// the caller's to uphold.
func Encode(p Packet) []byte {
	return p.appendTo(make([]byte, 0, DatagramSize))
}

func appendRequest(b []byte, opcode OpCode, filename string, mode Mode) []byte {
	b = binary.BigEndian.AppendUint16(b, uint16(opcode))
	b = append(b, filename...)
	b = append(b, 0)
	b = append(b, mode.String()...)

	return append(b, 0)
}

func (r *ReadRequest) appendTo(b []byte) []byte {
	return appendRequest(b, OpCodeRRQ, r.Filename, r.Mode)
}

func (w *WriteRequest) appendTo(b []byte) []byte {
	return appendRequest(b, OpCodeWRQ, w.Filename, w.Mode)
}

func (d *Data) appendTo(b []byte) []byte {
	b = binary.BigEndian.AppendUint16(b, uint16(OpCodeDATA))
	b = binary.BigEndian.AppendUint16(b, d.BlockNum)

	return append(b, d.Payload...)
}

func (a *Ack) appendTo(b []byte) []byte {
	b = binary.BigEndian.AppendUint16(b, uint16(OpCodeACK))

	return binary.BigEndian.AppendUint16(b, a.BlockNum)
}

func (e *Error) appendTo(b []byte) []byte {
	b = binary.BigEndian.AppendUint16(b, uint16(OpCodeERROR))
	b = binary.BigEndian.AppendUint16(b, uint16(e.ErrorCode))
	b = append(b, e.ErrMsg...)

	return append(b, 0)
}
