package protocol

import (
	"fmt"

	"github.com/go-mclib/mcserver/nbt"
	ns "github.com/go-mclib/mcserver/wire"
)

// ClientInformation reports client-side display/accessibility settings.
// This core reads the packet but does not act on any of its fields.
type ClientInformation struct {
	Locale               ns.String
	ViewDistance         ns.Int8
	ChatMode             ns.VarInt
	ChatColors           ns.Boolean
	DisplayedSkinParts   ns.Uint8
	MainHand             ns.VarInt
	EnableTextFiltering  ns.Boolean
	AllowServerListings  ns.Boolean
	ParticleStatus       ns.VarInt
}

func (ClientInformation) ID() ns.VarInt { return 0x00 }
func (ClientInformation) Phase() Phase  { return PhaseConfiguration }
func (ClientInformation) Bound() Bound  { return Serverbound }

func (p *ClientInformation) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Locale, err = buf.ReadString(16); err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	if p.ViewDistance, err = buf.ReadInt8(); err != nil {
		return fmt.Errorf("view_distance: %w", err)
	}
	if p.ChatMode, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("chat_mode: %w", err)
	}
	if p.ChatColors, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("chat_colors: %w", err)
	}
	if p.DisplayedSkinParts, err = buf.ReadUint8(); err != nil {
		return fmt.Errorf("displayed_skin_parts: %w", err)
	}
	if p.MainHand, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("main_hand: %w", err)
	}
	if p.EnableTextFiltering, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("enable_text_filtering: %w", err)
	}
	if p.AllowServerListings, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("allow_server_listings: %w", err)
	}
	if p.ParticleStatus, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("particle_status: %w", err)
	}
	return nil
}

func (p *ClientInformation) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.Locale); err != nil {
		return err
	}
	if err := buf.WriteInt8(p.ViewDistance); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.ChatMode); err != nil {
		return err
	}
	if err := buf.WriteBool(p.ChatColors); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.DisplayedSkinParts); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.MainHand); err != nil {
		return err
	}
	if err := buf.WriteBool(p.EnableTextFiltering); err != nil {
		return err
	}
	if err := buf.WriteBool(p.AllowServerListings); err != nil {
		return err
	}
	return buf.WriteVarInt(p.ParticleStatus)
}

// CustomPayload carries an application-defined channel and opaque data. The
// data field consumes the remainder of the frame body.
type CustomPayload struct {
	Channel ns.Identifier
	Data    ns.ByteArray
}

func (CustomPayload) ID() ns.VarInt { return 0x02 }
func (CustomPayload) Phase() Phase  { return PhaseConfiguration }
func (CustomPayload) Bound() Bound  { return Serverbound }

func (p *CustomPayload) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Channel, err = buf.ReadIdentifier(); err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	p.Data, err = readRemaining(buf)
	return err
}

func (p *CustomPayload) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return err
	}
	return buf.WriteFixedByteArray(p.Data)
}

// FinishConfiguration signals the end of the Configuration round-trip. As
// serverbound, decoding it advances the connection to Play.
type FinishConfiguration struct{}

func (FinishConfiguration) ID() ns.VarInt { return 0x03 }
func (FinishConfiguration) Phase() Phase  { return PhaseConfiguration }

// FinishConfiguration is always Serverbound; the clientbound direction,
// with the same id and empty body, is the separate
// FinishConfigurationClientbound type below.
func (FinishConfiguration) Bound() Bound                        { return Serverbound }
func (*FinishConfiguration) Read(buf *ns.PacketBuffer) error  { return nil }
func (*FinishConfiguration) Write(buf *ns.PacketBuffer) error { return nil }

// FinishConfigurationClientbound is the clientbound counterpart of
// FinishConfiguration (id 0x03, same empty body, opposite direction).
type FinishConfigurationClientbound struct{}

func (FinishConfigurationClientbound) ID() ns.VarInt                      { return 0x03 }
func (FinishConfigurationClientbound) Phase() Phase                       { return PhaseConfiguration }
func (FinishConfigurationClientbound) Bound() Bound                       { return Clientbound }
func (*FinishConfigurationClientbound) Read(buf *ns.PacketBuffer) error  { return nil }
func (*FinishConfigurationClientbound) Write(buf *ns.PacketBuffer) error { return nil }

// KnownPack identifies a registry/data pack the client or server already has.
type KnownPack struct {
	Namespace ns.String
	ID        ns.String
	Version   ns.String
}

func readKnownPack(buf *ns.PacketBuffer) (KnownPack, error) {
	var kp KnownPack
	var err error
	if kp.Namespace, err = buf.ReadString(32767); err != nil {
		return kp, err
	}
	if kp.ID, err = buf.ReadString(32767); err != nil {
		return kp, err
	}
	if kp.Version, err = buf.ReadString(32767); err != nil {
		return kp, err
	}
	return kp, nil
}

func writeKnownPack(buf *ns.PacketBuffer, kp KnownPack) error {
	if err := buf.WriteString(kp.Namespace); err != nil {
		return err
	}
	if err := buf.WriteString(kp.ID); err != nil {
		return err
	}
	return buf.WriteString(kp.Version)
}

// SelectKnownPacks, sent by either side, lists the data packs the sender
// already has, so the receiver knows which RegistryData entries to send in
// full versus by reference.
type SelectKnownPacks struct {
	KnownPacks ns.PrefixedArray[KnownPack]
	bound      Bound
}

func NewSelectKnownPacksServerbound() *SelectKnownPacks { return &SelectKnownPacks{bound: Serverbound} }
func NewSelectKnownPacksClientbound() *SelectKnownPacks { return &SelectKnownPacks{bound: Clientbound} }

func (p *SelectKnownPacks) ID() ns.VarInt {
	if p.bound == Clientbound {
		return 0x0E
	}
	return 0x07
}
func (p *SelectKnownPacks) Phase() Phase { return PhaseConfiguration }
func (p *SelectKnownPacks) Bound() Bound { return p.bound }

func (p *SelectKnownPacks) Read(buf *ns.PacketBuffer) error {
	return p.KnownPacks.DecodeWith(buf, readKnownPack)
}

func (p *SelectKnownPacks) Write(buf *ns.PacketBuffer) error {
	return p.KnownPacks.EncodeWith(buf, writeKnownPack)
}

// ConfigurationDisconnect terminates the connection during Configuration
// with an NBT-encoded reason.
type ConfigurationDisconnect struct {
	Reason nbt.Tag
}

func (ConfigurationDisconnect) ID() ns.VarInt { return 0x02 }
func (ConfigurationDisconnect) Phase() Phase  { return PhaseConfiguration }
func (ConfigurationDisconnect) Bound() Bound  { return Clientbound }

func (p *ConfigurationDisconnect) Read(buf *ns.PacketBuffer) error {
	tc, err := buf.ReadTextComponent()
	if err != nil {
		return fmt.Errorf("reason: %w", err)
	}
	p.Reason = nbt.String(tc.Text)
	return nil
}

func (p *ConfigurationDisconnect) Write(buf *ns.PacketBuffer) error {
	data, err := nbt.Encode(p.Reason, "", true)
	if err != nil {
		return fmt.Errorf("reason: %w", err)
	}
	_, err = buf.Write(data)
	return err
}

// RegistryEntry is one (id, optional NBT data) pair within a RegistryData
// packet. A nil Data means the client should use its built-in definition.
type RegistryEntry struct {
	ID   ns.String
	Data ns.PrefixedOptional[nbt.Tag]
}

func readRegistryEntry(buf *ns.PacketBuffer) (RegistryEntry, error) {
	var e RegistryEntry
	var err error
	if e.ID, err = buf.ReadString(32767); err != nil {
		return e, err
	}
	err = e.Data.DecodeWith(buf, func(b *ns.PacketBuffer) (nbt.Tag, error) {
		r := nbt.NewReaderFrom(b.Reader())
		tag, _, err := r.ReadTag(true)
		return tag, err
	})
	return e, err
}

func writeRegistryEntry(buf *ns.PacketBuffer, e RegistryEntry) error {
	if err := buf.WriteString(e.ID); err != nil {
		return err
	}
	return e.Data.EncodeWith(buf, func(b *ns.PacketBuffer, v nbt.Tag) error {
		data, err := nbt.Encode(v, "", true)
		if err != nil {
			return err
		}
		_, err = b.Write(data)
		return err
	})
}

// RegistryData pushes one registry's worth of definitions to the client.
// See session/registries.go (buildRegistries) for the five required
// registries and their minimally-vanilla-compatible entries.
type RegistryData struct {
	RegistryID ns.String
	Entries    ns.PrefixedArray[RegistryEntry]
}

func (RegistryData) ID() ns.VarInt { return 0x07 }
func (RegistryData) Phase() Phase  { return PhaseConfiguration }
func (RegistryData) Bound() Bound  { return Clientbound }

func (p *RegistryData) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.RegistryID, err = buf.ReadString(32767); err != nil {
		return fmt.Errorf("registry_id: %w", err)
	}
	if err := p.Entries.DecodeWith(buf, readRegistryEntry); err != nil {
		return fmt.Errorf("entries: %w", err)
	}
	return nil
}

func (p *RegistryData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.RegistryID); err != nil {
		return err
	}
	return p.Entries.EncodeWith(buf, writeRegistryEntry)
}

// readRemaining drains buf's reader to the end of the frame body. Only
// valid when buf was constructed over a bounded reader (the frame codec
// hands packet Read methods a reader scoped to exactly one frame body).
func readRemaining(buf *ns.PacketBuffer) (ns.ByteArray, error) {
	var out []byte
	chunk := make([]byte, 4096)
	for {
		n, err := buf.Reader().Read(chunk)
		if n > 0 {
			out = append(out, chunk[:n]...)
		}
		if err != nil {
			break
		}
	}
	return out, nil
}
