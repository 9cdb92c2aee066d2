// Package frame implements the varint-length-prefixed packet envelope
// (§4.4) over a TCP connection, including the per-read receive timeout.
//
// Grounded on go-mclib-protocol's java_protocol/packet.go
// (ReadWirePacketFrom/WirePacket) and conn.go (the net.Conn wrapper),
// minus the compression and encryption branches this core excludes.
package frame

import (
	"bytes"
	"fmt"
	"net"
	"time"

	ns "github.com/go-mclib/mcserver/wire"
)

// ReceiveTimeout is the sole timeout in this core: 10 seconds of silence
// on any single read attempt triggers ErrClientTimedOut (§4.4, §5). A var,
// not a const, so tests can shorten it rather than waiting out the real
// interval.
var ReceiveTimeout = 10 * time.Second

// ErrClientTimedOut is returned when a read deadline elapses with no bytes
// received.
var ErrClientTimedOut = fmt.Errorf("frame: client timed out")

// MaxFrameLength is the protocol's maximum packet length: 2^21 - 1 bytes,
// the largest value a 3-byte VarInt can carry.
const MaxFrameLength = 1<<21 - 1

// Conn wraps a net.Conn and reassembles length-prefixed frames from it,
// buffering partially-received data between calls to ReadFrame.
//
// A Conn is owned exclusively by one connection's task; it is never
// shared (§5/§6 concurrency model).
type Conn struct {
	nc  net.Conn
	buf bytes.Buffer
}

// NewConn wraps nc for framed reads and writes.
func NewConn(nc net.Conn) *Conn {
	return &Conn{nc: nc}
}

// NetConn returns the underlying net.Conn.
func (c *Conn) NetConn() net.Conn { return c.nc }

// Close closes the underlying connection.
func (c *Conn) Close() error { return c.nc.Close() }

// RemoteAddr returns the remote network address.
func (c *Conn) RemoteAddr() net.Addr { return c.nc.RemoteAddr() }

// ReadFrame reads one length-prefixed frame body, blocking (subject to
// ReceiveTimeout per read attempt) until a full frame is available.
//
// Read loop (§4.4):
//  1. Attempt to decode a varint length prefix from the accumulation buffer.
//  2. If present and the full body follows, consume and return it.
//  3. Otherwise issue one read into the accumulation buffer under the
//     receive timeout and retry.
func (c *Conn) ReadFrame() ([]byte, error) {
	for {
		if body, ok, err := c.tryExtractFrame(); err != nil {
			return nil, err
		} else if ok {
			return body, nil
		}

		if err := c.nc.SetReadDeadline(time.Now().Add(ReceiveTimeout)); err != nil {
			return nil, err
		}

		chunk := make([]byte, 4096)
		n, err := c.nc.Read(chunk)
		if n > 0 {
			c.buf.Write(chunk[:n])
		}
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				return nil, ErrClientTimedOut
			}
			return nil, err
		}
	}
}

// tryExtractFrame attempts to decode and consume one frame from the
// accumulation buffer without blocking. ok is false when more bytes are
// needed.
func (c *Conn) tryExtractFrame() (body []byte, ok bool, err error) {
	data := c.buf.Bytes()

	length, n, err := peekVarInt(data)
	if err == errIncompleteVarInt {
		// Not enough bytes yet for the length prefix itself.
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if length < 0 || int(length) > MaxFrameLength {
		return nil, false, fmt.Errorf("frame: invalid frame length %d", length)
	}

	total := n + int(length)
	if len(data) < total {
		return nil, false, nil
	}

	body = make([]byte, length)
	copy(body, data[n:total])
	c.buf.Next(total)
	return body, true, nil
}

// peekVarInt decodes a VarInt from the front of data without consuming
// from c.buf, returning the value and the number of bytes it occupied.
func peekVarInt(data []byte) (ns.VarInt, int, error) {
	var result int32
	var position uint
	for i := 0; i < len(data); i++ {
		b := data[i]
		result |= int32(b&0x7F) << position
		if b&0x80 == 0 {
			return ns.VarInt(result), i + 1, nil
		}
		position += 7
		if position >= 32 {
			return 0, 0, fmt.Errorf("frame: VarInt is too big")
		}
	}
	return 0, 0, errIncompleteVarInt
}

// errIncompleteVarInt reports that data ends before the VarInt does.
var errIncompleteVarInt = fmt.Errorf("frame: incomplete VarInt")

// WriteFrame encodes body as a frame (varint length + body) and writes it
// to the connection.
func (c *Conn) WriteFrame(body []byte) error {
	prefix := ns.VarInt(len(body))
	prefixBytes, err := prefix.ToBytes()
	if err != nil {
		return fmt.Errorf("frame: failed to encode length: %w", err)
	}

	if _, err := c.nc.Write(prefixBytes); err != nil {
		return fmt.Errorf("frame: failed to write length: %w", err)
	}
	if _, err := c.nc.Write(body); err != nil {
		return fmt.Errorf("frame: failed to write body: %w", err)
	}
	return nil
}
