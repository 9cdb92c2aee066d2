package session

import (
	"github.com/go-mclib/mcserver/nbt"
	"github.com/go-mclib/mcserver/protocol"
	ns "github.com/go-mclib/mcserver/wire"
)

// hookConn adapts *Conn to the narrow surface application hooks are
// allowed to touch (hooks.Conn), so the hooks package never needs to
// import session.
type hookConn struct {
	c *Conn
}

func (h *hookConn) Send(p protocol.Packet) error { return h.c.sendPacket(p) }
func (h *hookConn) PlayerUUID() ns.UUID          { return h.c.playerUUID }
func (h *hookConn) Username() string             { return h.c.username }

// mkTextReason builds a plain-text disconnect reason as NBT, matching
// the minimal TextComponent shape Disconnect packets expect.
func mkTextReason(text string) nbt.Tag {
	tc := ns.NewTextComponent(text)
	return nbt.String(tc.Text)
}
