package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOpCode(t *testing.T) {
	for v, want := range map[uint16]OpCode{
		1: OpCodeRRQ,
		2: OpCodeWRQ,
		3: OpCodeDATA,
		4: OpCodeACK,
		5: OpCodeERROR,
	} {
		op, err := ParseOpCode(v)
		require.NoError(t, err)
		assert.Equal(t, want, op)
	}

	for _, v := range []uint16{0, 6, 42, 65535} {
		_, err := ParseOpCode(v)

		var opErr *InvalidOpcodeError
		require.ErrorAs(t, err, &opErr)
	}
}

func TestParseMode(t *testing.T) {
	for s, want := range map[string]Mode{
		"netascii": ModeNetascii,
		"octet":    ModeOctet,
		"mail":     ModeMail,
	} {
		mode, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, want, mode)
		assert.Equal(t, s, mode.String())
	}

	for _, s := range []string{"", "OCTET", "Netascii", "octet ", "binary"} {
		_, err := ParseMode(s)

		var pktErr *InvalidPacketError
		require.ErrorAs(t, err, &pktErr)
	}
}

func TestParseErrCode(t *testing.T) {
	for v := uint16(0); v <= 7; v++ {
		code, err := ParseErrCode(v)
		require.NoError(t, err)
		assert.Equal(t, ErrCode(v), code)
	}

	for _, v := range []uint16{8, 100, 65535} {
		_, err := ParseErrCode(v)

		var pktErr *InvalidPacketError
		require.ErrorAs(t, err, &pktErr)
	}
}

func TestErrorMessages(t *testing.T) {
	assert.EqualError(t, &InvalidPacketError{Reason: "bad mode"}, "invalid packet: bad mode")
	assert.EqualError(t, &InvalidPacketLengthError{Expected: 512}, "invalid packet length: expected 512 bytes")
	assert.EqualError(t, &InvalidOpcodeError{Reason: "6 is not a known opcode"}, "invalid opcode: 6 is not a known opcode")
}
