package protocol

import (
	"fmt"

	ns "github.com/go-mclib/mcserver/wire"
)

// Next-state values carried by Intention.NextState.
const (
	NextStateStatus   ns.VarInt = 1
	NextStateLogin    ns.VarInt = 2
	NextStateTransfer ns.VarInt = 3
)

// Intention is the sole Handshake packet. It selects the phase the
// connection transitions into: Status, Login, or (recognized but
// unsupported here) Transfer.
//
// > This packet causes the server to switch into the target phase. It
// should be sent right after opening the TCP connection.
type Intention struct {
	ProtocolVersion ns.VarInt
	ServerAddress   ns.String
	ServerPort      ns.Uint16
	NextState       ns.VarInt
}

func (Intention) ID() ns.VarInt  { return 0x00 }
func (Intention) Phase() Phase   { return PhaseHandshake }
func (Intention) Bound() Bound   { return Serverbound }

func (p *Intention) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.ProtocolVersion, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("protocol_version: %w", err)
	}
	if p.ServerAddress, err = buf.ReadString(255); err != nil {
		return fmt.Errorf("server_address: %w", err)
	}
	if p.ServerPort, err = buf.ReadUint16(); err != nil {
		return fmt.Errorf("server_port: %w", err)
	}
	if p.NextState, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("next_state: %w", err)
	}
	if p.NextState != NextStateStatus && p.NextState != NextStateLogin && p.NextState != NextStateTransfer {
		return &InvalidEnumVariantError{Name: "next_state", Value: int(p.NextState)}
	}
	return nil
}

func (p *Intention) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.ProtocolVersion); err != nil {
		return err
	}
	if err := buf.WriteString(p.ServerAddress); err != nil {
		return err
	}
	if err := buf.WriteUint16(p.ServerPort); err != nil {
		return err
	}
	return buf.WriteVarInt(p.NextState)
}
