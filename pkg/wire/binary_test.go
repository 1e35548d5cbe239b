package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalBinary(t *testing.T) {
	t.Run("Ack", func(t *testing.T) {
		var ack Ack

		require.NoError(t, ack.UnmarshalBinary([]byte{0, 4, 0, 42}))
		assert.Equal(t, uint16(42), ack.BlockNum)
	})

	t.Run("AckRejectsForeignOpcode", func(t *testing.T) {
		var ack Ack

		err := ack.UnmarshalBinary([]byte{0, 3, 0, 42})

		var opErr *InvalidOpcodeError
		require.ErrorAs(t, err, &opErr)
	})

	t.Run("RequestRejectsOtherRequestKind", func(t *testing.T) {
		var rrq ReadRequest

		err := rrq.UnmarshalBinary(Encode(&WriteRequest{Filename: "f", Mode: ModeOctet}))

		var opErr *InvalidOpcodeError
		require.ErrorAs(t, err, &opErr)
	})

	t.Run("MalformedDatagramPropagates", func(t *testing.T) {
		var data Data

		err := data.UnmarshalBinary([]byte{0, 3, 0})

		var pktErr *InvalidPacketError
		require.ErrorAs(t, err, &pktErr)
	})
}

func TestMarshalBinary(t *testing.T) {
	errPkt := &Error{ErrorCode: ErrFileNotFound, ErrMsg: "missing.txt not found"}

	b, err := errPkt.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, Encode(errPkt), b)

	var decoded Error
	require.NoError(t, decoded.UnmarshalBinary(b))
	assert.Equal(t, *errPkt, decoded)
}
