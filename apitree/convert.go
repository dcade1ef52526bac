package apitree

import (
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"

	"github.com/christoph-hart/hise-api-generator/apijson"
	"github.com/christoph-hart/hise-api-generator/valuetree"
)

// cborEncMode uses canonical mode so nested payloads are byte-stable
// regardless of map iteration order.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("apitree: cbor enc mode: %v", err))
	}
	cborEncMode = em
}

// ConvertValue maps a decoded input value onto the closed Value union.
// Scalars keep their type and value. Nested objects and arrays have no
// Value variant of their own; they are stored as Binary holding the
// canonical CBOR encoding of the nested structure. The same applies to
// unsigned integers above MaxInt64 and to any other Go value; nothing is
// ever turned into a String that was not one.
func ConvertValue(v any) valuetree.Value {
	switch v := v.(type) {
	case nil:
		return valuetree.Null{}
	case bool:
		return valuetree.Bool(v)
	case int64:
		return valuetree.Int64(v)
	case int:
		return valuetree.Int64(v)
	case int8:
		return valuetree.Int64(v)
	case int16:
		return valuetree.Int64(v)
	case int32:
		return valuetree.Int64(v)
	case uint8:
		return valuetree.Int64(v)
	case uint16:
		return valuetree.Int64(v)
	case uint32:
		return valuetree.Int64(v)
	case uint:
		if uint64(v) <= math.MaxInt64 {
			return valuetree.Int64(v)
		}
	case uint64:
		if v <= math.MaxInt64 {
			return valuetree.Int64(v)
		}
	case float64:
		return valuetree.Double(v)
	case float32:
		return valuetree.Double(v)
	case string:
		return valuetree.String(v)
	case []byte:
		return valuetree.Binary(v)
	case valuetree.Value:
		return v
	}
	data, err := cborEncMode.Marshal(plain(v))
	if err != nil {
		// Only values that cannot come out of a decoder (funcs, channels)
		// reach this.
		panic(fmt.Sprintf("apitree: encode %T: %v", v, err))
	}
	return valuetree.Binary(data)
}

// plain rewrites ordered objects as ordinary maps for the CBOR encoder.
func plain(v any) any {
	switch v := v.(type) {
	case *apijson.Object:
		if v == nil {
			return nil
		}
		m := make(map[string]any, v.Len())
		for k, e := range v.All() {
			m[k] = plain(e)
		}
		return m
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = plain(e)
		}
		return out
	}
	return v
}
