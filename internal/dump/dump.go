// Package dump inspects tftp traffic: it listens for udp datagrams and
// logs each one decoded in isolation. It never replies and keeps no
// per-peer state.
package dump

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net"

	"github.com/Wa4h1h/tftp-packet/pkg/wire"
	"go.uber.org/zap"
)

// maxDatagram is the largest udp payload. Oversized packets must be read
// in full so the decoder can report them instead of silently truncating.
const maxDatagram = 1 << 16

type Inspector struct {
	logger  *zap.Logger
	conn    net.PacketConn
	port    string
	preview uint
}

// NewInspector returns an Inspector logging to l. preview caps the number
// of DATA payload bytes rendered as hex per packet; 0 disables the preview.
func NewInspector(l *zap.Logger, port string, preview uint) *Inspector {
	return &Inspector{logger: l, port: port, preview: preview}
}

func (i *Inspector) ListenAndInspect() error {
	conn, err := net.ListenPacket("udp", fmt.Sprintf(":%s", i.port))
	if err != nil {
		return fmt.Errorf("error while starting the udp listener: %w", err)
	}

	i.conn = conn

	for {
		datagram := make([]byte, maxDatagram)

		n, addr, err := conn.ReadFrom(datagram)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}

			return err
		}

		if n > 0 {
			i.inspect(addr.String(), datagram[:n])
		}
	}
}

func (i *Inspector) Close() error {
	if i.conn == nil {
		return nil
	}

	if err := i.conn.Close(); err != nil {
		return fmt.Errorf("error while closing the udp listener: %w", err)
	}

	return nil
}

func (i *Inspector) inspect(from string, datagram []byte) {
	pkt, err := wire.Decode(datagram)
	if err != nil {
		i.logger.Warn("undecodable datagram",
			zap.String("from", from),
			zap.Int("bytes", len(datagram)),
			zap.Error(err))

		return
	}

	fields := append([]zap.Field{
		zap.String("from", from),
		zap.Stringer("opcode", pkt.OpCode()),
	}, i.packetFields(pkt)...)

	i.logger.Info("packet", fields...)
}

func (i *Inspector) packetFields(p wire.Packet) []zap.Field {
	switch pkt := p.(type) {
	case *wire.ReadRequest:
		return []zap.Field{
			zap.String("filename", pkt.Filename),
			zap.Stringer("mode", pkt.Mode),
		}
	case *wire.WriteRequest:
		return []zap.Field{
			zap.String("filename", pkt.Filename),
			zap.Stringer("mode", pkt.Mode),
		}
	case *wire.Data:
		fields := []zap.Field{
			zap.Uint16("block", pkt.BlockNum),
			zap.Int("payload_bytes", len(pkt.Payload)),
		}

		if n := int(i.preview); n > 0 {
			if n > len(pkt.Payload) {
				n = len(pkt.Payload)
			}

			fields = append(fields, zap.String("payload_head", hex.EncodeToString(pkt.Payload[:n])))
		}

		return fields
	case *wire.Ack:
		return []zap.Field{zap.Uint16("block", pkt.BlockNum)}
	case *wire.Error:
		return []zap.Field{
			zap.Stringer("error_code", pkt.ErrorCode),
			zap.String("error_msg", pkt.ErrMsg),
		}
	default:
		return nil
	}
}
