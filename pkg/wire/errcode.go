package wire

import "fmt"

// ErrCode is the 2-byte error code carried by an ERROR packet.
type ErrCode uint16

const (
	ErrNotDefined ErrCode = iota
	ErrFileNotFound
	ErrAccessViolation
	ErrDiskFull
	ErrIllegalOperation
	ErrUnknownTransferID
	ErrFileAlreadyExists
	ErrNoSuchUser
)

// ParseErrCode validates a wire value against the rfc1350 error codes 0-7.
func ParseErrCode(v uint16) (ErrCode, error) {
	if v > uint16(ErrNoSuchUser) {
		return 0, &InvalidPacketError{Reason: fmt.Sprintf("%d is not a valid error code", v)}
	}

	return ErrCode(v), nil
}

func (e ErrCode) String() string {
	switch e {
	case ErrNotDefined:
		return "not defined"
	case ErrFileNotFound:
		return "file not found"
	case ErrAccessViolation:
		return "access violation"
	case ErrDiskFull:
		return "disk full or allocation exceeded"
	case ErrIllegalOperation:
		return "illegal tftp operation"
	case ErrUnknownTransferID:
		return "unknown transfer id"
	case ErrFileAlreadyExists:
		return "file already exists"
	case ErrNoSuchUser:
		return "no such user"
	default:
		return fmt.Sprintf("ErrCode(%d)", uint16(e))
	}
}
