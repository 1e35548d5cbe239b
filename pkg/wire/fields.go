package wire

import "unicode/utf8"

func parseFilename(input []byte) (string, []byte, error) {
	raw, rest, ok := takeUntilNull(input)
	if !ok {
		return "", nil, &InvalidPacketError{Reason: "filename is missing its null terminator"}
	}

	if !utf8.Valid(raw) {
		return "", nil, &InvalidPacketError{Reason: "filename is not a valid UTF-8 string"}
	}

	return string(raw), rest, nil
}

func parseMode(input []byte) (Mode, []byte, error) {
	raw, rest, ok := takeUntilNull(input)
	if !ok {
		return 0, nil, &InvalidPacketError{Reason: "mode is missing its null terminator"}
	}

	if !utf8.Valid(raw) {
		return 0, nil, &InvalidPacketError{Reason: "mode is not a valid UTF-8 string"}
	}

	mode, err := ParseMode(string(raw))
	if err != nil {
		return 0, nil, err
	}

	return mode, rest, nil
}

func parseBlockNum(input []byte) (uint16, []byte, error) {
	blockNum, rest, ok := takeUint16(input)
	if !ok {
		return 0, nil, &InvalidPacketError{Reason: "block number is shorter than 2 bytes"}
	}

	return blockNum, rest, nil
}

func parseErrCode(input []byte) (ErrCode, []byte, error) {
	v, rest, ok := takeUint16(input)
	if !ok {
		return 0, nil, &InvalidPacketError{Reason: "error code is shorter than 2 bytes"}
	}

	code, err := ParseErrCode(v)
	if err != nil {
		return 0, nil, err
	}

	return code, rest, nil
}

func parseErrMsg(input []byte) (string, []byte, error) {
	raw, rest, ok := takeUntilNull(input)
	if !ok {
		return "", nil, &InvalidPacketError{Reason: "error message is missing its null terminator"}
	}

	if !utf8.Valid(raw) {
		return "", nil, &InvalidPacketError{Reason: "error message is not a valid UTF-8 string"}
	}

	return string(raw), rest, nil
}
