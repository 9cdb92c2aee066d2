package session

import (
	"github.com/go-mclib/mcserver/nbt"
	"github.com/go-mclib/mcserver/protocol"
	ns "github.com/go-mclib/mcserver/wire"
)

// damageTypeNames is the full vanilla set of 48 damage type identifiers
// (§4.7: "an entry per damage type name (the 48 vanilla names)").
var damageTypeNames = []string{
	"in_fire", "lightning_bolt", "on_fire", "lava", "hot_floor", "in_wall",
	"cramming", "drown", "starve", "cactus", "fall", "fly_into_wall",
	"out_of_world", "generic", "magic", "wither", "dragon_breath", "dry_out",
	"sweet_berry_bush", "freeze", "stalagmite", "falling_block", "falling_anvil",
	"falling_stalactite", "stalactite", "sting", "mob_attack",
	"mob_attack_no_aggro", "player_attack", "arrow", "trident",
	"mob_projectile", "fireworks", "unattributed_fireball", "fireball",
	"wither_skull", "thrown", "indirect_magic", "thorns", "explosion",
	"player_explosion", "sonic_boom", "bad_respawn_point", "outside_border",
	"generic_kill", "campfire", "ender_pearl", "spit",
}

// buildRegistries constructs the five RegistryData packets the client
// requires before it will finish Configuration (§4.7). The NBT entries
// below are the minimal vanilla-compatible shapes named in the
// choreography; they are fixed by the client's parser, not negotiable.
func buildRegistries() []protocol.RegistryData {
	return []protocol.RegistryData{
		damageTypeRegistry(),
		dimensionTypeRegistry(),
		paintingVariantRegistry(),
		wolfVariantRegistry(),
		biomeRegistry(),
	}
}

func entry(id string, tag nbt.Tag) protocol.RegistryEntry {
	return protocol.RegistryEntry{ID: ns.String(id), Data: ns.Some(tag)}
}

func damageTypeRegistry() protocol.RegistryData {
	entries := make(ns.PrefixedArray[protocol.RegistryEntry], 0, len(damageTypeNames))
	for _, name := range damageTypeNames {
		tag := nbt.Compound{
			"exhaustion": nbt.Float(0.1),
			"message_id": nbt.String(name),
			"scaling":    nbt.String("when_caused_by_living_non_player"),
		}
		entries = append(entries, entry("minecraft:"+name, tag))
	}
	return protocol.RegistryData{RegistryID: "minecraft:damage_type", Entries: entries}
}

func dimensionTypeRegistry() protocol.RegistryData {
	overworld := nbt.Compound{
		"height":                    nbt.Int(384),
		"logical_height":            nbt.Int(384),
		"min_y":                     nbt.Int(-64),
		"ambient_light":             nbt.Float(0),
		"has_skylight":              nbt.Byte(1),
		"has_ceiling":               nbt.Byte(0),
		"ultrawarm":                 nbt.Byte(0),
		"natural":                   nbt.Byte(1),
		"piglin_safe":               nbt.Byte(0),
		"respawn_anchor_works":      nbt.Byte(0),
		"bed_works":                 nbt.Byte(1),
		"has_raids":                 nbt.Byte(1),
		"coordinate_scale":          nbt.Double(1),
		"effects":                   nbt.String("minecraft:overworld"),
		"infiniburn":                nbt.String("#minecraft:infiniburn_overworld"),
		"monster_spawn_light_level": nbt.Compound{
			"type": nbt.String("minecraft:uniform"),
			"value": nbt.Compound{
				"min_inclusive": nbt.Int(0),
				"max_inclusive": nbt.Int(7),
			},
		},
		"monster_spawn_block_light_limit": nbt.Int(0),
	}
	return protocol.RegistryData{
		RegistryID: "minecraft:dimension_type",
		Entries:    ns.PrefixedArray[protocol.RegistryEntry]{entry("minecraft:overworld", overworld)},
	}
}

func paintingVariantRegistry() protocol.RegistryData {
	placeholder := nbt.Compound{
		"asset_id": nbt.String("minecraft:kebab"),
		"height":   nbt.Int(1),
		"width":    nbt.Int(1),
	}
	return protocol.RegistryData{
		RegistryID: "minecraft:painting_variant",
		Entries:    ns.PrefixedArray[protocol.RegistryEntry]{entry("minecraft:kebab", placeholder)},
	}
}

func wolfVariantRegistry() protocol.RegistryData {
	placeholder := nbt.Compound{
		"wild_texture":  nbt.String("minecraft:entity/wolf/wolf"),
		"tame_texture":  nbt.String("minecraft:entity/wolf/wolf_tame"),
		"angry_texture": nbt.String("minecraft:entity/wolf/wolf_angry"),
		"biomes":        nbt.String("minecraft:forest"),
	}
	return protocol.RegistryData{
		RegistryID: "minecraft:wolf_variant",
		Entries:    ns.PrefixedArray[protocol.RegistryEntry]{entry("minecraft:pale", placeholder)},
	}
}

func biomeRegistry() protocol.RegistryData {
	makeBiome := func(downfall, temperature float32, precipitation bool) nbt.Tag {
		return nbt.Compound{
			"downfall":          nbt.Float(downfall),
			"temperature":       nbt.Float(temperature),
			"has_precipitation": boolByte(precipitation),
			"effects": nbt.Compound{
				"fog_color":        nbt.Int(0xC0D8FF),
				"sky_color":        nbt.Int(0x78A7FF),
				"water_color":      nbt.Int(0x3F76E4),
				"water_fog_color":  nbt.Int(0x050533),
				"mood_sound": nbt.Compound{
					"sound":               nbt.String("minecraft:ambient.cave"),
					"tick_delay":          nbt.Int(6000),
					"block_search_extent": nbt.Int(8),
					"offset":              nbt.Double(2.0),
				},
			},
		}
	}
	return protocol.RegistryData{
		RegistryID: "minecraft:worldgen/biome",
		Entries: ns.PrefixedArray[protocol.RegistryEntry]{
			entry("minecraft:plains", makeBiome(0.4, 0.8, true)),
			entry("minecraft:snowy_taiga", makeBiome(0.4, -0.5, true)),
		},
	}
}

func boolByte(b bool) nbt.Byte {
	if b {
		return nbt.Byte(1)
	}
	return nbt.Byte(0)
}
