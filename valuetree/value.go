package valuetree

// ---------------------------------------------------------------------------
// Property values.
//
// Value is a closed union. The six variants below are the only types that
// implement it; anything dynamic from the input side is converted to one of
// them before it reaches a Tree.
// ---------------------------------------------------------------------------

// Kind identifies a Value variant.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt64
	KindDouble
	KindString
	KindBinary
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt64:  "int64",
	KindDouble: "double",
	KindString: "string",
	KindBinary: "binary",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a property payload.
type Value interface {
	Kind() Kind
	value() // marker method
}

type Null struct{}
type Bool bool
type Int64 int64
type Double float64
type String string

// Binary is an opaque byte payload. The codec writes it verbatim.
type Binary []byte

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Int64) Kind() Kind  { return KindInt64 }
func (Double) Kind() Kind { return KindDouble }
func (String) Kind() Kind { return KindString }
func (Binary) Kind() Kind { return KindBinary }

func (Null) value()   {}
func (Bool) value()   {}
func (Int64) value()  {}
func (Double) value() {}
func (String) value() {}
func (Binary) value() {}
