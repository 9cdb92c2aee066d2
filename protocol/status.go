package protocol

import (
	"fmt"

	ns "github.com/go-mclib/mcserver/wire"
)

// StatusRequest asks the server for a StatusResponse. Carries no fields.
type StatusRequest struct{}

func (StatusRequest) ID() ns.VarInt               { return 0x00 }
func (StatusRequest) Phase() Phase                { return PhaseStatus }
func (StatusRequest) Bound() Bound                { return Serverbound }
func (*StatusRequest) Read(buf *ns.PacketBuffer) error  { return nil }
func (*StatusRequest) Write(buf *ns.PacketBuffer) error { return nil }

// PingRequest carries a client-chosen timestamp, echoed back by PongResponse.
type PingRequest struct {
	Timestamp ns.Int64
}

func (PingRequest) ID() ns.VarInt { return 0x01 }
func (PingRequest) Phase() Phase  { return PhaseStatus }
func (PingRequest) Bound() Bound  { return Serverbound }

func (p *PingRequest) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Timestamp, err = buf.ReadInt64()
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	return nil
}

func (p *PingRequest) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Timestamp)
}

// StatusResponse carries the server-list JSON document (see the
// application description()/players() hooks).
type StatusResponse struct {
	StatusJSON ns.String
}

func (StatusResponse) ID() ns.VarInt { return 0x00 }
func (StatusResponse) Phase() Phase  { return PhaseStatus }
func (StatusResponse) Bound() Bound  { return Clientbound }

func (p *StatusResponse) Read(buf *ns.PacketBuffer) error {
	var err error
	p.StatusJSON, err = buf.ReadString(32767)
	if err != nil {
		return fmt.Errorf("status_json: %w", err)
	}
	return nil
}

func (p *StatusResponse) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.StatusJSON)
}

// PongResponse echoes PingRequest's timestamp.
type PongResponse struct {
	Timestamp ns.Int64
}

func (PongResponse) ID() ns.VarInt { return 0x01 }
func (PongResponse) Phase() Phase  { return PhaseStatus }
func (PongResponse) Bound() Bound  { return Clientbound }

func (p *PongResponse) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Timestamp, err = buf.ReadInt64()
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	return nil
}

func (p *PongResponse) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Timestamp)
}
