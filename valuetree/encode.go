package valuetree

import (
	"encoding/binary"
	"math"
)

// ---------------------------------------------------------------------------
// Deterministic binary serialization of a Tree.
//
// Encoding conventions:
//   - Node:     Name, uvarint property count, properties, uvarint child
//               count, children (recursive)
//   - Name:     uint32 little-endian length + UTF-8 bytes
//   - Property: Name, 1-byte type tag, payload (see tags.go)
//   - Integers and doubles are fixed-width little-endian
//
// The stream starts directly with the root node. There is no magic number
// or version byte; a reader has to know the layout up front.
// ---------------------------------------------------------------------------

// Encode serializes t. The same tree content always yields the same bytes.
func Encode(t *Tree) []byte {
	return AppendEncode(make([]byte, 0, EncodedSize(t)), t)
}

// AppendEncode appends the serialization of t to dst and returns the
// extended buffer.
func AppendEncode(dst []byte, t *Tree) []byte {
	e := &encoder{buf: dst}
	e.writeNode(t)
	return e.buf
}

// EncodedSize returns len(Encode(t)) without producing the bytes.
func EncodedSize(t *Tree) int {
	n := nameSize(t.Name)
	n += uvarintSize(uint64(len(t.Properties)))
	for _, p := range t.Properties {
		n += nameSize(p.Name) + 1 + payloadSize(p.Value)
	}
	n += uvarintSize(uint64(len(t.Children)))
	for _, c := range t.Children {
		n += EncodedSize(c)
	}
	return n
}

type encoder struct {
	buf []byte
}

func (e *encoder) writeByte(b byte) {
	e.buf = append(e.buf, b)
}

func (e *encoder) writeUvarint(v uint64) {
	e.buf = binary.AppendUvarint(e.buf, v)
}

func (e *encoder) writeUint32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

func (e *encoder) writeInt64(v int64) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, uint64(v))
}

func (e *encoder) writeFloat64(v float64) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, math.Float64bits(v))
}

func (e *encoder) writeString(s string) {
	e.writeUint32(uint32(len(s)))
	e.buf = append(e.buf, s...)
}

func (e *encoder) writeBytes(b []byte) {
	e.writeUint32(uint32(len(b)))
	e.buf = append(e.buf, b...)
}

func (e *encoder) writeNode(t *Tree) {
	e.writeString(t.Name)

	e.writeUvarint(uint64(len(t.Properties)))
	for _, p := range t.Properties {
		e.writeString(p.Name)
		e.writeValue(p.Value)
	}

	e.writeUvarint(uint64(len(t.Children)))
	for _, c := range t.Children {
		e.writeNode(c)
	}
}

func (e *encoder) writeValue(v Value) {
	switch v := v.(type) {
	case Bool:
		e.writeByte(TagBool)
		if v {
			e.writeByte(1)
		} else {
			e.writeByte(0)
		}

	case Int64:
		e.writeByte(TagInt64)
		e.writeInt64(int64(v))

	case Double:
		e.writeByte(TagDouble)
		e.writeFloat64(float64(v))

	case String:
		e.writeByte(TagString)
		e.writeString(string(v))

	case Binary:
		e.writeByte(TagBinary)
		e.writeBytes(v)

	default:
		// Null, and a nil interface left in a hand-built tree.
		e.writeByte(TagNull)
	}
}

func nameSize(s string) int {
	return 4 + len(s)
}

func payloadSize(v Value) int {
	switch v := v.(type) {
	case Bool:
		return 1
	case Int64, Double:
		return 8
	case String:
		return 4 + len(v)
	case Binary:
		return 4 + len(v)
	}
	return 0
}

func uvarintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
