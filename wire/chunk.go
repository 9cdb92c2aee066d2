package wire

import (
	"fmt"

	"github.com/go-mclib/mcserver/nbt"
)

// ChunkData represents the data portion of LevelChunkWithLight.
//
// Wire format:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Heightmaps (NBT Compound, network format)                 │
//	├─────────────────────────────────────────────────────────────┤
//	│  Data (VarInt length + raw bytes, paletted chunk sections) │
//	├─────────────────────────────────────────────────────────────┤
//	│  BlockEntities (VarInt count + array of BlockEntity)       │
//	└─────────────────────────────────────────────────────────────┘
type ChunkData struct {
	// Heightmaps is the chunk's heightmap NBT, keyed by heightmap type name
	// ("WORLD_SURFACE", "MOTION_BLOCKING") with LongArray values.
	Heightmaps nbt.Tag

	// Data holds the packed chunk sections (see EncodeSection).
	Data []byte

	// BlockEntities in this chunk. Empty for terrain that carries none.
	BlockEntities []BlockEntity
}

// BlockEntity represents a block entity within a chunk.
//
// Wire format:
//
//	┌──────────────────┬────────────┬─────────────────┬─────────────┐
//	│  PackedXZ (byte) │  Y (short) │  Type (VarInt)  │  Data (NBT) │
//	└──────────────────┴────────────┴─────────────────┴─────────────┘
//
// PackedXZ encodes relative X and Z coordinates:
//
//	packed = ((blockX & 15) << 4) | (blockZ & 15)
type BlockEntity struct {
	PackedXZ Uint8
	Y        Int16
	Type     VarInt
	Data     nbt.Tag
}

// X returns the relative X coordinate (0-15) from PackedXZ.
func (b *BlockEntity) X() int {
	return int(b.PackedXZ >> 4)
}

// Z returns the relative Z coordinate (0-15) from PackedXZ.
func (b *BlockEntity) Z() int {
	return int(b.PackedXZ & 15)
}

// SetXZ sets the PackedXZ field from relative X and Z coordinates.
func (b *BlockEntity) SetXZ(x, z int) {
	b.PackedXZ = Uint8(((x & 15) << 4) | (z & 15))
}

// Decode reads ChunkData from the buffer.
func (c *ChunkData) Decode(buf *PacketBuffer) error {
	nbtReader := nbt.NewReaderFrom(buf.Reader())
	tag, _, err := nbtReader.ReadTag(true)
	if err != nil {
		return fmt.Errorf("failed to read heightmaps: %w", err)
	}
	c.Heightmaps = tag

	c.Data, err = buf.ReadByteArray(0)
	if err != nil {
		return fmt.Errorf("failed to read chunk data: %w", err)
	}

	count, err := buf.ReadVarInt()
	if err != nil {
		return fmt.Errorf("failed to read block entity count: %w", err)
	}
	c.BlockEntities = make([]BlockEntity, count)
	for i := range c.BlockEntities {
		if err := c.BlockEntities[i].Decode(buf); err != nil {
			return fmt.Errorf("failed to read block entity %d: %w", i, err)
		}
	}

	return nil
}

// Encode writes ChunkData to the buffer.
func (c *ChunkData) Encode(buf *PacketBuffer) error {
	heightmaps := c.Heightmaps
	if heightmaps == nil {
		heightmaps = nbt.Compound{}
	}
	nbtData, err := nbt.Encode(heightmaps, "", true)
	if err != nil {
		return fmt.Errorf("failed to encode heightmaps: %w", err)
	}
	if _, err := buf.Write(nbtData); err != nil {
		return fmt.Errorf("failed to write heightmaps: %w", err)
	}

	if err := buf.WriteByteArray(c.Data); err != nil {
		return fmt.Errorf("failed to write chunk data: %w", err)
	}

	if err := buf.WriteVarInt(VarInt(len(c.BlockEntities))); err != nil {
		return fmt.Errorf("failed to write block entity count: %w", err)
	}
	for i := range c.BlockEntities {
		if err := c.BlockEntities[i].Encode(buf); err != nil {
			return fmt.Errorf("failed to write block entity %d: %w", i, err)
		}
	}

	return nil
}

// Decode reads a BlockEntity from the buffer.
func (b *BlockEntity) Decode(buf *PacketBuffer) error {
	var err error

	b.PackedXZ, err = buf.ReadUint8()
	if err != nil {
		return fmt.Errorf("failed to read packed xz: %w", err)
	}

	b.Y, err = buf.ReadInt16()
	if err != nil {
		return fmt.Errorf("failed to read y: %w", err)
	}

	b.Type, err = buf.ReadVarInt()
	if err != nil {
		return fmt.Errorf("failed to read type: %w", err)
	}

	nbtReader := nbt.NewReaderFrom(buf.Reader())
	b.Data, _, err = nbtReader.ReadTag(true)
	if err != nil {
		return fmt.Errorf("failed to read nbt data: %w", err)
	}

	return nil
}

// Encode writes a BlockEntity to the buffer.
func (b *BlockEntity) Encode(buf *PacketBuffer) error {
	if err := buf.WriteUint8(b.PackedXZ); err != nil {
		return fmt.Errorf("failed to write packed xz: %w", err)
	}

	if err := buf.WriteInt16(b.Y); err != nil {
		return fmt.Errorf("failed to write y: %w", err)
	}

	if err := buf.WriteVarInt(b.Type); err != nil {
		return fmt.Errorf("failed to write type: %w", err)
	}

	data := b.Data
	if data == nil {
		data = nbt.Compound{}
	}
	nbtData, err := nbt.Encode(data, "", true)
	if err != nil {
		return fmt.Errorf("failed to encode nbt data: %w", err)
	}
	if _, err := buf.Write(nbtData); err != nil {
		return fmt.Errorf("failed to write nbt data: %w", err)
	}

	return nil
}

// ReadChunkData reads ChunkData from the buffer.
func (pb *PacketBuffer) ReadChunkData() (ChunkData, error) {
	var c ChunkData
	err := c.Decode(pb)
	return c, err
}

// WriteChunkData writes ChunkData to the buffer.
func (pb *PacketBuffer) WriteChunkData(c ChunkData) error {
	return c.Encode(pb)
}

// LightData carries per-section lighting bitmasks and arrays.
//
// This server never computes real lighting: every mask is a BitSet
// holding a single zero long (no sections marked), and both light
// array lists are empty. Clients render the chunk fullbright.
//
// Wire format:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  SkyLightMask, BlockLightMask (BitSet, each [0])            │
//	├─────────────────────────────────────────────────────────────┤
//	│  EmptySkyLightMask, EmptyBlockLightMask (BitSet, each [0])  │
//	├─────────────────────────────────────────────────────────────┤
//	│  SkyLightArrays, BlockLightArrays (VarInt count, each 0)    │
//	└─────────────────────────────────────────────────────────────┘
type LightData struct{}

// Decode reads (and discards) LightData from the buffer.
func (l *LightData) Decode(buf *PacketBuffer) error {
	for i := 0; i < 4; i++ {
		var mask BitSet
		if err := mask.Decode(buf); err != nil {
			return fmt.Errorf("failed to read light mask %d: %w", i, err)
		}
	}
	for i := 0; i < 2; i++ {
		count, err := buf.ReadVarInt()
		if err != nil {
			return fmt.Errorf("failed to read light array count %d: %w", i, err)
		}
		for range int(count) {
			if _, err := buf.ReadByteArray(2048); err != nil {
				return fmt.Errorf("failed to read light array %d: %w", i, err)
			}
		}
	}
	return nil
}

// Encode writes the empty-light stub to the buffer.
func (l *LightData) Encode(buf *PacketBuffer) error {
	zeroMask := BitSetFromLongs([]int64{0})
	for i := 0; i < 4; i++ {
		if err := zeroMask.Encode(buf); err != nil {
			return fmt.Errorf("failed to write light mask %d: %w", i, err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := buf.WriteVarInt(0); err != nil {
			return fmt.Errorf("failed to write light array count %d: %w", i, err)
		}
	}
	return nil
}

// ReadLightData reads LightData from the buffer.
func (pb *PacketBuffer) ReadLightData() (LightData, error) {
	var l LightData
	err := l.Decode(pb)
	return l, err
}

// WriteLightData writes LightData to the buffer.
func (pb *PacketBuffer) WriteLightData(l LightData) error {
	return l.Encode(pb)
}
