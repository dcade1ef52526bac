package valuetree

// ---------------------------------------------------------------------------
// Frozen type tags for property payloads.
//
// IMPORTANT: These tags are FROZEN. Generated sources embed the bytes and
// readers elsewhere decode them, so a tag must never change meaning once
// assigned. New variants get new tags.
// ---------------------------------------------------------------------------

const (
	TagReservedZero byte = 0x00

	TagNull   byte = 0x01 // no payload
	TagBool   byte = 0x02 // 1 byte, 0 or 1
	TagInt64  byte = 0x03 // 8 bytes little-endian
	TagDouble byte = 0x04 // IEEE 754 binary64, 8 bytes little-endian
	TagString byte = 0x05 // uint32 LE length + UTF-8 bytes
	TagBinary byte = 0x06 // uint32 LE length + raw bytes
)

// allTags lists every defined tag for uniqueness verification in tests.
var allTags = []byte{
	TagReservedZero,
	TagNull, TagBool, TagInt64, TagDouble, TagString, TagBinary,
}

// TagFor returns the type tag written for values of kind k.
func TagFor(k Kind) byte {
	switch k {
	case KindNull:
		return TagNull
	case KindBool:
		return TagBool
	case KindInt64:
		return TagInt64
	case KindDouble:
		return TagDouble
	case KindString:
		return TagString
	case KindBinary:
		return TagBinary
	}
	return TagReservedZero
}
