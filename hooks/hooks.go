// Package hooks declares the narrow embedding API (§4.8) that lets an
// application render a world, list of players, server description, and
// per-tick updates without depending on the session orchestrator's
// internals. Package session depends on Hooks; Hooks never depends on
// session.
package hooks

import (
	"github.com/go-mclib/mcserver/protocol"
	"github.com/go-mclib/mcserver/wire"
)

// PlayerCounts reports the server-list player summary.
type PlayerCounts struct {
	Max    int
	Online int
}

// DimensionData describes the single dimension this core exposes to a
// connecting client.
type DimensionData struct {
	// Height must be a positive multiple of 16.
	Height int
}

// Conn is the subset of the session orchestrator's per-connection surface
// that application hooks are allowed to touch: sending Play packets and
// reading identity.
//
// Implementations are called from many connections' tasks concurrently;
// a Hooks implementation must be safe for concurrent use (read-only or
// internally synchronized), per §5.
type Conn interface {
	// Send encodes a Play-phase packet and writes it to the calling
	// connection before returning.
	Send(packet protocol.Packet) error
	// PlayerUUID returns the UUID assigned to this connection at login.
	PlayerUUID() wire.UUID
	// Username returns the username this connection logged in with.
	Username() string
}

// Hooks is the full application embedding surface.
type Hooks interface {
	// Description returns the MOTD shown in the server list.
	Description() wire.TextComponent
	// Players returns the server-list player summary.
	Players() PlayerCounts
	// DimensionData returns the dimension configuration. The session
	// package does not call it; the dimension_type registry entry it pushes
	// during Configuration has a fixed height of 384.
	DimensionData() DimensionData
	// OnLogin is invoked exactly once per connection, when it enters Play.
	OnLogin(conn Conn)
	// OnTick is invoked once per ClientTickEnd a connection sends while in
	// Play.
	OnTick(conn Conn)
}

// Default is a minimal Hooks implementation suitable as a starting point:
// a static description, a fixed player cap with zero online, a dimension
// whose height is the Height field, and no-op login/tick callbacks.
type Default struct {
	MOTD       string
	MaxPlayers int
	Height     int
}

func (d Default) Description() wire.TextComponent {
	return wire.NewTextComponent(d.MOTD)
}

func (d Default) Players() PlayerCounts {
	return PlayerCounts{Max: d.MaxPlayers, Online: 0}
}

func (d Default) DimensionData() DimensionData {
	return DimensionData{Height: d.Height}
}

func (d Default) OnLogin(conn Conn) {}
func (d Default) OnTick(conn Conn)  {}
