package protocol

import (
	"fmt"

	"github.com/go-mclib/mcserver/nbt"
	ns "github.com/go-mclib/mcserver/wire"
)

// AcceptTeleportation confirms a teleport the server initiated.
type AcceptTeleportation struct {
	TeleportID ns.VarInt
}

func (AcceptTeleportation) ID() ns.VarInt { return 0x00 }
func (AcceptTeleportation) Phase() Phase  { return PhasePlay }
func (AcceptTeleportation) Bound() Bound  { return Serverbound }

func (p *AcceptTeleportation) Read(buf *ns.PacketBuffer) error {
	var err error
	p.TeleportID, err = buf.ReadVarInt()
	return err
}

func (p *AcceptTeleportation) Write(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.TeleportID)
}

// ChunkBatchReceived reports the client's measured chunks-per-tick
// processing rate. This core does not use it to adjust pacing (§10).
type ChunkBatchReceived struct {
	ChunksPerTick ns.Float32
}

func (ChunkBatchReceived) ID() ns.VarInt { return 0x09 }
func (ChunkBatchReceived) Phase() Phase  { return PhasePlay }
func (ChunkBatchReceived) Bound() Bound  { return Serverbound }

func (p *ChunkBatchReceived) Read(buf *ns.PacketBuffer) error {
	var err error
	p.ChunksPerTick, err = buf.ReadFloat32()
	return err
}

func (p *ChunkBatchReceived) Write(buf *ns.PacketBuffer) error {
	return buf.WriteFloat32(p.ChunksPerTick)
}

// ClientTickEnd marks the end of one client tick; the session orchestrator
// checks keepalive cadence against this (§4.7).
type ClientTickEnd struct{}

func (ClientTickEnd) ID() ns.VarInt                      { return 0x0B }
func (ClientTickEnd) Phase() Phase                       { return PhasePlay }
func (ClientTickEnd) Bound() Bound                        { return Serverbound }
func (*ClientTickEnd) Read(buf *ns.PacketBuffer) error  { return nil }
func (*ClientTickEnd) Write(buf *ns.PacketBuffer) error { return nil }

// PlayCustomPayload carries an application-defined channel and opaque data,
// consuming the remainder of the frame body.
type PlayCustomPayload struct {
	Channel ns.Identifier
	Data    ns.ByteArray
}

func (PlayCustomPayload) ID() ns.VarInt { return 0x14 }
func (PlayCustomPayload) Phase() Phase  { return PhasePlay }
func (PlayCustomPayload) Bound() Bound  { return Serverbound }

func (p *PlayCustomPayload) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Channel, err = buf.ReadIdentifier(); err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	p.Data, err = readRemaining(buf)
	return err
}

func (p *PlayCustomPayload) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return err
	}
	return buf.WriteFixedByteArray(p.Data)
}

// MovePlayerPos reports a player position update with no rotation change.
type MovePlayerPos struct {
	X, FeetY, Z ns.Float64
	Flags       ns.Uint8
}

func (MovePlayerPos) ID() ns.VarInt { return 0x1C }
func (MovePlayerPos) Phase() Phase  { return PhasePlay }
func (MovePlayerPos) Bound() Bound  { return Serverbound }

func (p *MovePlayerPos) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.X, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.FeetY, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return err
	}
	p.Flags, err = buf.ReadUint8()
	return err
}

func (p *MovePlayerPos) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.FeetY); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	return buf.WriteUint8(p.Flags)
}

// MovePlayerPosRot reports a player position and rotation update.
type MovePlayerPosRot struct {
	X, FeetY, Z  ns.Float64
	Yaw, Pitch   ns.Float32
	Flags        ns.Uint8
}

func (MovePlayerPosRot) ID() ns.VarInt { return 0x1D }
func (MovePlayerPosRot) Phase() Phase  { return PhasePlay }
func (MovePlayerPosRot) Bound() Bound  { return Serverbound }

func (p *MovePlayerPosRot) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.X, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.FeetY, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Yaw, err = buf.ReadFloat32(); err != nil {
		return err
	}
	if p.Pitch, err = buf.ReadFloat32(); err != nil {
		return err
	}
	p.Flags, err = buf.ReadUint8()
	return err
}

func (p *MovePlayerPosRot) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.FeetY); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Pitch); err != nil {
		return err
	}
	return buf.WriteUint8(p.Flags)
}

// --- Clientbound ---

// AddEntity spawns an entity in the client's world view.
type AddEntity struct {
	EntityID                       ns.VarInt
	EntityUUID                     ns.UUID
	Type                           ns.VarInt
	X, Y, Z                        ns.Float64
	Pitch, Yaw, HeadYaw            ns.Uint8
	Data                           ns.VarInt
	VelocityX, VelocityY, VelocityZ ns.Int16
}

func (AddEntity) ID() ns.VarInt { return 0x01 }
func (AddEntity) Phase() Phase  { return PhasePlay }
func (AddEntity) Bound() Bound  { return Clientbound }

func (p *AddEntity) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.EntityUUID, err = buf.ReadUUID(); err != nil {
		return err
	}
	if p.Type, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.X, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Pitch, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.Yaw, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.HeadYaw, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.Data, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.VelocityX, err = buf.ReadInt16(); err != nil {
		return err
	}
	if p.VelocityY, err = buf.ReadInt16(); err != nil {
		return err
	}
	p.VelocityZ, err = buf.ReadInt16()
	return err
}

func (p *AddEntity) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	if err := buf.WriteUUID(p.EntityUUID); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.Type); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.Pitch); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.HeadYaw); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.Data); err != nil {
		return err
	}
	if err := buf.WriteInt16(p.VelocityX); err != nil {
		return err
	}
	if err := buf.WriteInt16(p.VelocityY); err != nil {
		return err
	}
	return buf.WriteInt16(p.VelocityZ)
}

// ChunkBatchFinished marks the end of one batch of LevelChunkWithLight
// packets, reporting how many chunks it contained.
type ChunkBatchFinished struct {
	BatchSize ns.VarInt
}

func (ChunkBatchFinished) ID() ns.VarInt { return 0x0C }
func (ChunkBatchFinished) Phase() Phase  { return PhasePlay }
func (ChunkBatchFinished) Bound() Bound  { return Clientbound }

func (p *ChunkBatchFinished) Read(buf *ns.PacketBuffer) error {
	var err error
	p.BatchSize, err = buf.ReadVarInt()
	return err
}

func (p *ChunkBatchFinished) Write(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.BatchSize)
}

// ChunkBatchStart marks the start of a batch of LevelChunkWithLight
// packets. Carries no fields.
type ChunkBatchStart struct{}

func (ChunkBatchStart) ID() ns.VarInt                      { return 0x0D }
func (ChunkBatchStart) Phase() Phase                       { return PhasePlay }
func (ChunkBatchStart) Bound() Bound                        { return Clientbound }
func (*ChunkBatchStart) Read(buf *ns.PacketBuffer) error  { return nil }
func (*ChunkBatchStart) Write(buf *ns.PacketBuffer) error { return nil }

// PlayDisconnect terminates the connection during Play with an NBT-encoded
// reason.
type PlayDisconnect struct {
	Reason nbt.Tag
}

func (PlayDisconnect) ID() ns.VarInt { return 0x1D }
func (PlayDisconnect) Phase() Phase  { return PhasePlay }
func (PlayDisconnect) Bound() Bound  { return Clientbound }

func (p *PlayDisconnect) Read(buf *ns.PacketBuffer) error {
	tc, err := buf.ReadTextComponent()
	if err != nil {
		return fmt.Errorf("reason: %w", err)
	}
	p.Reason = nbt.String(tc.Text)
	return nil
}

func (p *PlayDisconnect) Write(buf *ns.PacketBuffer) error {
	data, err := nbt.Encode(p.Reason, "", true)
	if err != nil {
		return fmt.Errorf("reason: %w", err)
	}
	_, err = buf.Write(data)
	return err
}

// EntityPositionSync teleports an entity (including the client's own
// player) to an absolute position/rotation.
type EntityPositionSync struct {
	EntityID                        ns.VarInt
	X, Y, Z                         ns.Float64
	VelocityX, VelocityY, VelocityZ ns.Float64
	Yaw, Pitch                      ns.Float32
	OnGround                        ns.Boolean
}

func (EntityPositionSync) ID() ns.VarInt { return 0x20 }
func (EntityPositionSync) Phase() Phase  { return PhasePlay }
func (EntityPositionSync) Bound() Bound  { return Clientbound }

func (p *EntityPositionSync) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.X, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.VelocityX, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.VelocityY, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.VelocityZ, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Yaw, err = buf.ReadFloat32(); err != nil {
		return err
	}
	if p.Pitch, err = buf.ReadFloat32(); err != nil {
		return err
	}
	p.OnGround, err = buf.ReadBool()
	return err
}

func (p *EntityPositionSync) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.VelocityX); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.VelocityY); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.VelocityZ); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Pitch); err != nil {
		return err
	}
	return buf.WriteBool(p.OnGround)
}

// Game event ids used by GameEvent below.
const (
	GameEventStartWaitingForLevelChunks ns.Uint8 = 13
)

// GameEvent signals a miscellaneous world/UI event to the client.
type GameEvent struct {
	Event ns.Uint8
	Value ns.Float32
}

func (GameEvent) ID() ns.VarInt { return 0x23 }
func (GameEvent) Phase() Phase  { return PhasePlay }
func (GameEvent) Bound() Bound  { return Clientbound }

func (p *GameEvent) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Event, err = buf.ReadUint8(); err != nil {
		return err
	}
	p.Value, err = buf.ReadFloat32()
	return err
}

func (p *GameEvent) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUint8(p.Event); err != nil {
		return err
	}
	return buf.WriteFloat32(p.Value)
}

// KeepAlive carries an opaque id the client must echo back; its cadence is
// the sole liveness signal in Play (§4.7, §5 keepalive cadence).
type KeepAlive struct {
	KeepAliveID ns.Int64
}

func (KeepAlive) ID() ns.VarInt { return 0x27 }
func (KeepAlive) Phase() Phase  { return PhasePlay }
func (KeepAlive) Bound() Bound  { return Clientbound }

func (p *KeepAlive) Read(buf *ns.PacketBuffer) error {
	var err error
	p.KeepAliveID, err = buf.ReadInt64()
	return err
}

func (p *KeepAlive) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.KeepAliveID)
}

// LevelChunkWithLight carries one chunk column's terrain and (stubbed)
// lighting data (§4.5).
type LevelChunkWithLight struct {
	ChunkX, ChunkZ ns.Int32
	Data           ns.ChunkData
	Light          ns.LightData
}

func (LevelChunkWithLight) ID() ns.VarInt { return 0x28 }
func (LevelChunkWithLight) Phase() Phase  { return PhasePlay }
func (LevelChunkWithLight) Bound() Bound  { return Clientbound }

func (p *LevelChunkWithLight) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.ChunkX, err = buf.ReadInt32(); err != nil {
		return err
	}
	if p.ChunkZ, err = buf.ReadInt32(); err != nil {
		return err
	}
	if err := p.Data.Decode(buf); err != nil {
		return err
	}
	return p.Light.Decode(buf)
}

func (p *LevelChunkWithLight) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteInt32(p.ChunkX); err != nil {
		return err
	}
	if err := buf.WriteInt32(p.ChunkZ); err != nil {
		return err
	}
	if err := p.Data.Encode(buf); err != nil {
		return err
	}
	return p.Light.Encode(buf)
}

// Login is the Play-phase packet that establishes the player's initial
// world state. Its field order and types are normative (§4.3).
type Login struct {
	EntityID             ns.Int32
	IsHardcore           ns.Boolean
	DimensionNames       ns.PrefixedArray[ns.String]
	MaxPlayers           ns.VarInt
	ViewDistance         ns.VarInt
	SimulationDistance   ns.VarInt
	ReducedDebugInfo     ns.Boolean
	EnableRespawnScreen  ns.Boolean
	IsDebug              ns.Boolean
	DimensionTypeIndex   ns.VarInt
	DimensionName        ns.String
	HashedSeed           ns.Int64
	GameMode             ns.Uint8
	PreviousGameMode     ns.Int8
	IsDebugWorld         ns.Boolean
	IsFlat               ns.Boolean
	HasDeathLocation     ns.Boolean
	PortalCooldown       ns.VarInt
	SeaLevel             ns.VarInt
	EnforcesSecureChat   ns.Boolean
}

func (Login) ID() ns.VarInt { return 0x2C }
func (Login) Phase() Phase  { return PhasePlay }
func (Login) Bound() Bound  { return Clientbound }

func (p *Login) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.EntityID, err = buf.ReadInt32(); err != nil {
		return fmt.Errorf("entity_id: %w", err)
	}
	if p.IsHardcore, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("hardcore: %w", err)
	}
	if err := p.DimensionNames.DecodeWith(buf, func(b *ns.PacketBuffer) (ns.String, error) {
		return b.ReadString(32767)
	}); err != nil {
		return fmt.Errorf("dimension_names: %w", err)
	}
	if p.MaxPlayers, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("max_players: %w", err)
	}
	if p.ViewDistance, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("view_distance: %w", err)
	}
	if p.SimulationDistance, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("simulation_distance: %w", err)
	}
	if p.ReducedDebugInfo, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("reduced_debug: %w", err)
	}
	if p.EnableRespawnScreen, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("enable_respawn_screen: %w", err)
	}
	if p.IsDebug, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("is_debug: %w", err)
	}
	if p.DimensionTypeIndex, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("dimension_type_index: %w", err)
	}
	if p.DimensionName, err = buf.ReadString(32767); err != nil {
		return fmt.Errorf("dimension_name: %w", err)
	}
	if p.HashedSeed, err = buf.ReadInt64(); err != nil {
		return fmt.Errorf("hashed_seed: %w", err)
	}
	if p.GameMode, err = buf.ReadUint8(); err != nil {
		return fmt.Errorf("game_mode: %w", err)
	}
	if p.PreviousGameMode, err = buf.ReadInt8(); err != nil {
		return fmt.Errorf("previous_game_mode: %w", err)
	}
	if p.IsDebugWorld, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("is_debug_world: %w", err)
	}
	if p.IsFlat, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("is_flat: %w", err)
	}
	if p.HasDeathLocation, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("has_death_location: %w", err)
	}
	if p.PortalCooldown, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("portal_cooldown: %w", err)
	}
	if p.SeaLevel, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("sea_level: %w", err)
	}
	p.EnforcesSecureChat, err = buf.ReadBool()
	if err != nil {
		return fmt.Errorf("enforces_secure_chat: %w", err)
	}
	return nil
}

func (p *Login) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteInt32(p.EntityID); err != nil {
		return err
	}
	if err := buf.WriteBool(p.IsHardcore); err != nil {
		return err
	}
	if err := p.DimensionNames.EncodeWith(buf, func(b *ns.PacketBuffer, v ns.String) error {
		return b.WriteString(v)
	}); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.MaxPlayers); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.ViewDistance); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.SimulationDistance); err != nil {
		return err
	}
	if err := buf.WriteBool(p.ReducedDebugInfo); err != nil {
		return err
	}
	if err := buf.WriteBool(p.EnableRespawnScreen); err != nil {
		return err
	}
	if err := buf.WriteBool(p.IsDebug); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.DimensionTypeIndex); err != nil {
		return err
	}
	if err := buf.WriteString(p.DimensionName); err != nil {
		return err
	}
	if err := buf.WriteInt64(p.HashedSeed); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.GameMode); err != nil {
		return err
	}
	if err := buf.WriteInt8(p.PreviousGameMode); err != nil {
		return err
	}
	if err := buf.WriteBool(p.IsDebugWorld); err != nil {
		return err
	}
	if err := buf.WriteBool(p.IsFlat); err != nil {
		return err
	}
	if err := buf.WriteBool(p.HasDeathLocation); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.PortalCooldown); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.SeaLevel); err != nil {
		return err
	}
	return buf.WriteBool(p.EnforcesSecureChat)
}

// PlayerAbilities reports the player's current flight/invulnerability
// abilities and fly/walk speeds.
type PlayerAbilities struct {
	Flags       ns.Uint8
	FlyingSpeed ns.Float32
	FOVModifier ns.Float32
}

func (PlayerAbilities) ID() ns.VarInt { return 0x3A }
func (PlayerAbilities) Phase() Phase  { return PhasePlay }
func (PlayerAbilities) Bound() Bound  { return Clientbound }

func (p *PlayerAbilities) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Flags, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.FlyingSpeed, err = buf.ReadFloat32(); err != nil {
		return err
	}
	p.FOVModifier, err = buf.ReadFloat32()
	return err
}

func (p *PlayerAbilities) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUint8(p.Flags); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.FlyingSpeed); err != nil {
		return err
	}
	return buf.WriteFloat32(p.FOVModifier)
}

// PlayerPosition teleports the client's own player to an absolute
// position, assigning a teleport_id the client must echo via
// AcceptTeleportation.
type PlayerPosition struct {
	TeleportID                      ns.VarInt
	X, Y, Z                         ns.Float64
	VelocityX, VelocityY, VelocityZ ns.Float64
	Yaw, Pitch                      ns.Float32
	Flags                           ns.Int32
}

func (PlayerPosition) ID() ns.VarInt { return 0x42 }
func (PlayerPosition) Phase() Phase  { return PhasePlay }
func (PlayerPosition) Bound() Bound  { return Clientbound }

func (p *PlayerPosition) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.TeleportID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.X, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.VelocityX, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.VelocityY, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.VelocityZ, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Yaw, err = buf.ReadFloat32(); err != nil {
		return err
	}
	if p.Pitch, err = buf.ReadFloat32(); err != nil {
		return err
	}
	p.Flags, err = buf.ReadInt32()
	return err
}

func (p *PlayerPosition) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.TeleportID); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.VelocityX); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.VelocityY); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.VelocityZ); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Pitch); err != nil {
		return err
	}
	return buf.WriteInt32(p.Flags)
}

// SetChunkCacheCenter tells the client which chunk column the server
// considers the center of its view, for cache-eviction purposes.
type SetChunkCacheCenter struct {
	ChunkX, ChunkZ ns.VarInt
}

func (SetChunkCacheCenter) ID() ns.VarInt { return 0x58 }
func (SetChunkCacheCenter) Phase() Phase  { return PhasePlay }
func (SetChunkCacheCenter) Bound() Bound  { return Clientbound }

func (p *SetChunkCacheCenter) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.ChunkX, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.ChunkZ, err = buf.ReadVarInt()
	return err
}

func (p *SetChunkCacheCenter) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.ChunkX); err != nil {
		return err
	}
	return buf.WriteVarInt(p.ChunkZ)
}
