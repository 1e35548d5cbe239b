package wire

import "fmt"

// The five packet shapes implement encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler. MarshalBinary never returns a non-nil error;
// UnmarshalBinary rejects datagrams whose opcode belongs to another shape.

func (r *ReadRequest) MarshalBinary() ([]byte, error) {
	return Encode(r), nil
}

func (r *ReadRequest) UnmarshalBinary(data []byte) error {
	p, err := Decode(data)
	if err != nil {
		return err
	}

	rrq, ok := p.(*ReadRequest)
	if !ok {
		return wrongOpCode(OpCodeRRQ, p.OpCode())
	}

	*r = *rrq

	return nil
}

func (w *WriteRequest) MarshalBinary() ([]byte, error) {
	return Encode(w), nil
}

func (w *WriteRequest) UnmarshalBinary(data []byte) error {
	p, err := Decode(data)
	if err != nil {
		return err
	}

	wrq, ok := p.(*WriteRequest)
	if !ok {
		return wrongOpCode(OpCodeWRQ, p.OpCode())
	}

	*w = *wrq

	return nil
}

func (d *Data) MarshalBinary() ([]byte, error) {
	return Encode(d), nil
}

func (d *Data) UnmarshalBinary(data []byte) error {
	p, err := Decode(data)
	if err != nil {
		return err
	}

	dat, ok := p.(*Data)
	if !ok {
		return wrongOpCode(OpCodeDATA, p.OpCode())
	}

	*d = *dat

	return nil
}

func (a *Ack) MarshalBinary() ([]byte, error) {
	return Encode(a), nil
}

func (a *Ack) UnmarshalBinary(data []byte) error {
	p, err := Decode(data)
	if err != nil {
		return err
	}

	ack, ok := p.(*Ack)
	if !ok {
		return wrongOpCode(OpCodeACK, p.OpCode())
	}

	*a = *ack

	return nil
}

func (e *Error) MarshalBinary() ([]byte, error) {
	return Encode(e), nil
}

func (e *Error) UnmarshalBinary(data []byte) error {
	p, err := Decode(data)
	if err != nil {
		return err
	}

	errPkt, ok := p.(*Error)
	if !ok {
		return wrongOpCode(OpCodeERROR, p.OpCode())
	}

	*e = *errPkt

	return nil
}

func wrongOpCode(want, got OpCode) error {
	return &InvalidOpcodeError{Reason: fmt.Sprintf("expected %s, got %s", want, got)}
}
