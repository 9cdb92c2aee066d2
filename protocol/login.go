package protocol

import (
	"fmt"

	ns "github.com/go-mclib/mcserver/wire"
)

// Hello is the client's login request, carrying its chosen username and
// (in the offline subset this core implements) an offline-mode UUID.
type Hello struct {
	Name       ns.String
	PlayerUUID ns.UUID
}

func (Hello) ID() ns.VarInt { return 0x00 }
func (Hello) Phase() Phase  { return PhaseLogin }
func (Hello) Bound() Bound  { return Serverbound }

func (p *Hello) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Name, err = buf.ReadString(16); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	if p.PlayerUUID, err = buf.ReadUUID(); err != nil {
		return fmt.Errorf("player_uuid: %w", err)
	}
	return nil
}

func (p *Hello) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.Name); err != nil {
		return err
	}
	return buf.WriteUUID(p.PlayerUUID)
}

// LoginAcknowledged is sent by the client after receiving LoginFinished.
// Decoding it advances the connection to Configuration. Carries no fields.
type LoginAcknowledged struct{}

func (LoginAcknowledged) ID() ns.VarInt                      { return 0x03 }
func (LoginAcknowledged) Phase() Phase                       { return PhaseLogin }
func (LoginAcknowledged) Bound() Bound                        { return Serverbound }
func (*LoginAcknowledged) Read(buf *ns.PacketBuffer) error  { return nil }
func (*LoginAcknowledged) Write(buf *ns.PacketBuffer) error { return nil }

// LoginDisconnect terminates the connection during Login with a reason.
type LoginDisconnect struct {
	Reason ns.String
}

func (LoginDisconnect) ID() ns.VarInt { return 0x00 }
func (LoginDisconnect) Phase() Phase  { return PhaseLogin }
func (LoginDisconnect) Bound() Bound  { return Clientbound }

func (p *LoginDisconnect) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Reason, err = buf.ReadString(0)
	if err != nil {
		return fmt.Errorf("reason: %w", err)
	}
	return nil
}

func (p *LoginDisconnect) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.Reason)
}

// LoginFinished completes the login handshake with the server-assigned
// identity. properties is always empty in the offline subset.
type LoginFinished struct {
	UUID       ns.UUID
	Username   ns.String
	Properties ns.ByteArray
}

func (LoginFinished) ID() ns.VarInt { return 0x02 }
func (LoginFinished) Phase() Phase  { return PhaseLogin }
func (LoginFinished) Bound() Bound  { return Clientbound }

func (p *LoginFinished) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.UUID, err = buf.ReadUUID(); err != nil {
		return fmt.Errorf("uuid: %w", err)
	}
	if p.Username, err = buf.ReadString(16); err != nil {
		return fmt.Errorf("username: %w", err)
	}
	if p.Properties, err = buf.ReadByteArray(0); err != nil {
		return fmt.Errorf("properties: %w", err)
	}
	return nil
}

func (p *LoginFinished) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUUID(p.UUID); err != nil {
		return err
	}
	if err := buf.WriteString(p.Username); err != nil {
		return err
	}
	return buf.WriteByteArray(p.Properties)
}
