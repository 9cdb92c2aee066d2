package wire

import (
	"bytes"
	"testing"

	"github.com/go-mclib/mcserver/nbt"
)

func TestTextComponent_SimpleText(t *testing.T) {
	tc := NewTextComponent("Hello, World!")

	buf := NewWriter()
	if err := tc.Encode(buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var decoded TextComponent
	readBuf := NewReader(buf.Bytes())
	if err := decoded.Decode(readBuf); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded.Text != tc.Text {
		t.Errorf("Text mismatch: got %q, want %q", decoded.Text, tc.Text)
	}
}

func TestTextComponent_WithStyle(t *testing.T) {
	bold := true
	italic := false
	tc := TextComponent{
		Text:   "Styled text",
		Color:  "red",
		Bold:   &bold,
		Italic: &italic,
	}

	buf := NewWriter()
	if err := tc.Encode(buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var decoded TextComponent
	readBuf := NewReader(buf.Bytes())
	if err := decoded.Decode(readBuf); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded.Text != tc.Text {
		t.Errorf("Text mismatch: got %q, want %q", decoded.Text, tc.Text)
	}
	if decoded.Color != tc.Color {
		t.Errorf("Color mismatch: got %q, want %q", decoded.Color, tc.Color)
	}
}

func TestTextComponent_WithExtra(t *testing.T) {
	tc := TextComponent{
		Text: "Hello, ",
		Extra: []TextComponent{
			{Text: "World", Color: "gold"},
			{Text: "!"},
		},
	}

	buf := NewWriter()
	if err := tc.Encode(buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var decoded TextComponent
	readBuf := NewReader(buf.Bytes())
	if err := decoded.Decode(readBuf); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded.Text != tc.Text {
		t.Errorf("Text mismatch: got %q, want %q", decoded.Text, tc.Text)
	}
}

func TestTextComponent_PlainStringShorthand(t *testing.T) {
	data, err := nbt.Encode(nbt.String("Plain text"), "", true)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var decoded TextComponent
	readBuf := NewReader(data)
	if err := decoded.Decode(readBuf); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded.Text != "Plain text" {
		t.Errorf("Text mismatch: got %q, want %q", decoded.Text, "Plain text")
	}
}

func TestTextComponent_PacketBufferHelpers(t *testing.T) {
	tc := NewTextComponent("Test message")

	buf := NewWriter()
	if err := buf.WriteTextComponent(tc); err != nil {
		t.Fatalf("WriteTextComponent failed: %v", err)
	}

	readBuf := NewReader(buf.Bytes())
	decoded, err := readBuf.ReadTextComponent()
	if err != nil {
		t.Fatalf("ReadTextComponent failed: %v", err)
	}

	if decoded.Text != tc.Text {
		t.Errorf("Text mismatch: got %q, want %q", decoded.Text, tc.Text)
	}
}

func TestTextComponent_RoundTrip(t *testing.T) {
	bold := true
	tc := TextComponent{
		Text:  "Complex",
		Color: "#FF5555",
		Bold:  &bold,
		Extra: []TextComponent{
			{Text: " component", Color: "aqua"},
		},
	}

	buf := NewWriter()
	if err := tc.Encode(buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	encoded := buf.Bytes()

	var decoded TextComponent
	readBuf := NewReader(encoded)
	if err := decoded.Decode(readBuf); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	buf2 := NewWriter()
	if err := decoded.Encode(buf2); err != nil {
		t.Fatalf("Re-encode failed: %v", err)
	}
	reencoded := buf2.Bytes()

	if !bytes.Equal(encoded, reencoded) {
		t.Errorf("Round-trip encoding mismatch:\n  original:  %x\n  reencoded: %x", encoded, reencoded)
	}
}
