package wire_test

import (
	"strings"
	"testing"

	ns "github.com/go-mclib/mcserver/wire"
)

// String/Identifier wire format: VarInt byte-length + UTF-8 bytes. These are
// exercised end to end through Intention's server_address and through the
// registry identifiers session/registries.go actually ships.

func TestString_RoundTripsServerAddress(t *testing.T) {
	addresses := []ns.String{"play.example.com", "192.168.1.1", "日本語.example"}
	for _, addr := range addresses {
		buf := ns.NewWriter()
		if err := buf.WriteString(addr); err != nil {
			t.Fatalf("WriteString(%q) error = %v", addr, err)
		}
		got, err := ns.NewReader(buf.Bytes()).ReadString(255)
		if err != nil {
			t.Fatalf("ReadString() error = %v", err)
		}
		if got != addr {
			t.Errorf("got %q, want %q", got, addr)
		}
	}
}

func TestString_IntentionServerAddressRejectsOverLongHostname(t *testing.T) {
	// Intention.Read caps server_address at 255, matching the handshake's
	// documented field limit.
	over := ns.String(strings.Repeat("a", 256))
	buf := ns.NewWriter()
	if err := buf.WriteString(over); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}
	if _, err := ns.NewReader(buf.Bytes()).ReadString(255); err == nil {
		t.Error("ReadString(255) should reject a 256-byte server address")
	}
}

func TestIdentifier_RoundTripsRegistryIDs(t *testing.T) {
	// These are the literal identifiers session/registries.go builds
	// registry entries under, not arbitrary placeholders.
	ids := []ns.Identifier{
		"minecraft:overworld",
		"minecraft:dimension_type",
		"minecraft:painting_variant",
		"minecraft:worldgen/biome",
		"#minecraft:infiniburn_overworld",
	}
	for _, id := range ids {
		buf := ns.NewWriter()
		if err := buf.WriteIdentifier(id); err != nil {
			t.Fatalf("WriteIdentifier(%q) error = %v", id, err)
		}
		got, err := ns.NewReader(buf.Bytes()).ReadIdentifier()
		if err != nil {
			t.Fatalf("ReadIdentifier() error = %v", err)
		}
		if got != id {
			t.Errorf("got %q, want %q", got, id)
		}
	}
}

func TestIdentifier_NamespacePath(t *testing.T) {
	cases := []struct {
		id        ns.Identifier
		namespace string
		path      string
	}{
		{"minecraft:overworld", "minecraft", "overworld"},
		{"minecraft:worldgen/biome", "minecraft", "worldgen/biome"},
		{"plains", "minecraft", "plains"}, // default namespace
	}
	for _, tc := range cases {
		if got := tc.id.Namespace(); got != tc.namespace {
			t.Errorf("%q.Namespace() = %q, want %q", tc.id, got, tc.namespace)
		}
		if got := tc.id.Path(); got != tc.path {
			t.Errorf("%q.Path() = %q, want %q", tc.id, got, tc.path)
		}
	}
}
