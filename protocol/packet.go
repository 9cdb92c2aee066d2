// Package protocol declares the packet schemas for protocol version 769
// (game version 1.21.4): one typed struct plus a Read/Write pair per
// packet, grouped by phase and direction.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets
package protocol

import (
	"fmt"

	ns "github.com/go-mclib/mcserver/wire"
)

// ProtocolVersion is the protocol version this package implements.
const ProtocolVersion = 769

// GameVersion is the game version string reported in Status responses.
const GameVersion = "1.21.4"

// Phase is the protocol state of a connection. Not sent over the wire;
// server and client transition phases automatically based on specific
// packets (see Phase transition table in the Handshake/Login/Configuration
// packets below).
type Phase uint8

const (
	PhaseHandshake Phase = iota
	PhaseStatus
	PhaseLogin
	PhaseConfiguration
	PhasePlay
)

func (p Phase) String() string {
	switch p {
	case PhaseHandshake:
		return "Handshake"
	case PhaseStatus:
		return "Status"
	case PhaseLogin:
		return "Login"
	case PhaseConfiguration:
		return "Configuration"
	case PhasePlay:
		return "Play"
	default:
		return "Unknown"
	}
}

// Bound is the direction a packet travels.
type Bound uint8

const (
	// Serverbound: client -> server.
	Serverbound Bound = iota
	// Clientbound: server -> client.
	Clientbound
)

// Packet is the interface every packet variant implements.
type Packet interface {
	// ID returns this packet's id within its (Phase, Bound).
	ID() ns.VarInt
	// Phase returns the protocol phase this packet belongs to.
	Phase() Phase
	// Bound returns the direction this packet travels.
	Bound() Bound
	// Read deserializes the packet's fields from buf (id already consumed).
	Read(buf *ns.PacketBuffer) error
	// Write serializes the packet's fields to buf (id not yet written).
	Write(buf *ns.PacketBuffer) error
}

// InvalidPacketIDError is returned when a packet id has no known variant in
// the given phase and direction.
type InvalidPacketIDError struct {
	Phase Phase
	Bound Bound
	ID    ns.VarInt
}

func (e *InvalidPacketIDError) Error() string {
	return fmt.Sprintf("protocol: invalid packet id 0x%02x in phase %s", int(e.ID), e.Phase)
}

// InvalidEnumVariantError is returned when a field's value is not one of
// the enumerated values the protocol defines for it.
type InvalidEnumVariantError struct {
	Name  string
	Value int
}

func (e *InvalidEnumVariantError) Error() string {
	return fmt.Sprintf("protocol: invalid value %d for %s", e.Value, e.Name)
}
