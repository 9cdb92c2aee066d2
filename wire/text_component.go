package wire

import (
	"encoding/json"

	"github.com/go-mclib/mcserver/nbt"
)

// TextComponent represents a Minecraft chat/text component.
//
// Only the subset of the format actually produced or consumed by this
// server is modeled: plain text, color, a handful of boolean style
// flags, and nested Extra children. Encoded as NBT over the network
// (network format, nameless root) and as plain JSON for the Status
// response's description field.
type TextComponent struct {
	Text  string `json:"text,omitempty"`
	Color string `json:"color,omitempty"`

	Bold          *bool `json:"bold,omitempty"`
	Italic        *bool `json:"italic,omitempty"`
	Underlined    *bool `json:"underlined,omitempty"`
	Strikethrough *bool `json:"strikethrough,omitempty"`
	Obfuscated    *bool `json:"obfuscated,omitempty"`

	Extra []TextComponent `json:"extra,omitempty"`
}

// NewTextComponent creates a simple text component with the given text.
func NewTextComponent(text string) TextComponent {
	return TextComponent{Text: text}
}

// isSimpleText reports whether this component carries no style or
// children and can be encoded as a bare NBT String tag.
func (tc *TextComponent) isSimpleText() bool {
	return tc.Color == "" &&
		tc.Bold == nil &&
		tc.Italic == nil &&
		tc.Underlined == nil &&
		tc.Strikethrough == nil &&
		tc.Obfuscated == nil &&
		len(tc.Extra) == 0
}

// tag builds the NBT representation of this component.
func (tc *TextComponent) tag() nbt.Tag {
	if tc.isSimpleText() {
		return nbt.String(tc.Text)
	}

	compound := nbt.Compound{"text": nbt.String(tc.Text)}
	if tc.Color != "" {
		compound["color"] = nbt.String(tc.Color)
	}
	if tc.Bold != nil {
		compound["bold"] = boolByte(*tc.Bold)
	}
	if tc.Italic != nil {
		compound["italic"] = boolByte(*tc.Italic)
	}
	if tc.Underlined != nil {
		compound["underlined"] = boolByte(*tc.Underlined)
	}
	if tc.Strikethrough != nil {
		compound["strikethrough"] = boolByte(*tc.Strikethrough)
	}
	if tc.Obfuscated != nil {
		compound["obfuscated"] = boolByte(*tc.Obfuscated)
	}
	if len(tc.Extra) > 0 {
		elems := make([]nbt.Tag, len(tc.Extra))
		for i := range tc.Extra {
			child := tc.Extra[i].tag()
			if s, ok := child.(nbt.String); ok {
				child = nbt.Compound{"text": s}
			}
			elems[i] = child
		}
		compound["extra"] = nbt.List{ElementType: nbt.TagCompound, Elements: elems}
	}
	return compound
}

func boolByte(b bool) nbt.Byte {
	if b {
		return nbt.Byte(1)
	}
	return nbt.Byte(0)
}

// fromTag populates tc from a decoded NBT tag (String shorthand or Compound).
func (tc *TextComponent) fromTag(tag nbt.Tag) error {
	switch t := tag.(type) {
	case nbt.String:
		*tc = TextComponent{Text: string(t)}
	case nbt.Compound:
		*tc = TextComponent{Text: t.GetString("text"), Color: t.GetString("color")}
		flags := map[string]**bool{"bold": &tc.Bold, "italic": &tc.Italic, "underlined": &tc.Underlined,
			"strikethrough": &tc.Strikethrough, "obfuscated": &tc.Obfuscated}
		for name, dst := range flags {
			if b, ok := t[name].(nbt.Byte); ok {
				v := b != 0
				*dst = &v
			}
		}
		if extra, ok := t["extra"].(nbt.List); ok {
			tc.Extra = make([]TextComponent, len(extra.Elements))
			for i, e := range extra.Elements {
				if err := tc.Extra[i].fromTag(e); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Encode writes the text component as NBT to the writer.
// Simple text-only components are encoded as NBT String tags for efficiency.
func (tc *TextComponent) Encode(buf *PacketBuffer) error {
	data, err := nbt.Encode(tc.tag(), "", true)
	if err != nil {
		return err
	}
	_, err = buf.Write(data)
	return err
}

// Decode reads a text component from NBT (network format).
func (tc *TextComponent) Decode(buf *PacketBuffer) error {
	nbtReader := nbt.NewReaderFrom(buf.Reader())
	tag, _, err := nbtReader.ReadTag(true)
	if err != nil {
		return err
	}
	return tc.fromTag(tag)
}

// ReadTextComponent reads a text component from the buffer.
func (pb *PacketBuffer) ReadTextComponent() (TextComponent, error) {
	var tc TextComponent
	err := tc.Decode(pb)
	return tc, err
}

// WriteTextComponent writes a text component to the buffer.
func (pb *PacketBuffer) WriteTextComponent(tc TextComponent) error {
	return tc.Encode(pb)
}

// UnmarshalJSON handles both plain JSON strings (e.g. `"hello"`) and
// JSON objects (e.g. `{"text":"hello","color":"red"}`).
func (tc *TextComponent) UnmarshalJSON(data []byte) error {
	var s string
	if json.Unmarshal(data, &s) == nil {
		*tc = TextComponent{Text: s}
		return nil
	}
	type plain TextComponent
	return json.Unmarshal(data, (*plain)(tc))
}
