package wire

import "fmt"

// Mode is the transfer mode requested by an RRQ or WRQ. The wire form is
// the lowercase mode string, matched case-sensitively.
type Mode uint8

const (
	ModeNetascii Mode = iota + 1
	ModeOctet
	ModeMail
)

const (
	modeNetascii = "netascii"
	modeOctet    = "octet"
	modeMail     = "mail"
)

// ParseMode validates a wire string against the three rfc1350 modes.
func ParseMode(s string) (Mode, error) {
	switch s {
	case modeNetascii:
		return ModeNetascii, nil
	case modeOctet:
		return ModeOctet, nil
	case modeMail:
		return ModeMail, nil
	default:
		return 0, &InvalidPacketError{Reason: fmt.Sprintf("%q is not a valid mode", s)}
	}
}

// String returns the canonical wire string. Values outside the closed set
// render as the empty string.
func (m Mode) String() string {
	switch m {
	case ModeNetascii:
		return modeNetascii
	case ModeOctet:
		return modeOctet
	case ModeMail:
		return modeMail
	default:
		return ""
	}
}
