package wire

import (
	"bytes"
	"encoding/binary"
)

// takeUint16 consumes the first two bytes of input as a big-endian uint16.
// It reports false if fewer than two bytes remain.
func takeUint16(input []byte) (uint16, []byte, bool) {
	if len(input) < 2 {
		return 0, input, false
	}

	return binary.BigEndian.Uint16(input), input[2:], true
}

// takeUntilNull consumes bytes up to the first null byte. The remaining
// slice starts after the terminator; the terminator belongs to neither
// return value. It reports false if no null byte is found.
func takeUntilNull(input []byte) ([]byte, []byte, bool) {
	i := bytes.IndexByte(input, 0)
	if i < 0 {
		return nil, input, false
	}

	return input[:i], input[i+1:], true
}
