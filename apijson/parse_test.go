package apijson

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParse_PreservesKeyOrder(t *testing.T) {
	v, err := Parse([]byte(`{"zeta": 1, "alpha": 2, "mid": 3}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	obj, ok := AsObject(v)
	if !ok {
		t.Fatalf("root is %T, want *Object", v)
	}
	if got := obj.Keys(); !reflect.DeepEqual(got, []string{"zeta", "alpha", "mid"}) {
		t.Errorf("keys = %v", got)
	}

	var iterated []string
	for k := range obj.All() {
		iterated = append(iterated, k)
	}
	if !reflect.DeepEqual(iterated, obj.Keys()) {
		t.Errorf("All() order = %v, want %v", iterated, obj.Keys())
	}
}

func TestParse_Scalars(t *testing.T) {
	v, err := Parse([]byte(`{
		"n": null, "t": true, "f": false,
		"i": 42, "neg": -7, "big": 9223372036854775807,
		"huge": 18446744073709551616, "r": 1.5, "e": 1e3,
		"s": "text"
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	obj, _ := AsObject(v)

	want := map[string]any{
		"n":    nil,
		"t":    true,
		"f":    false,
		"i":    int64(42),
		"neg":  int64(-7),
		"big":  int64(9223372036854775807),
		"huge": float64(18446744073709551616),
		"r":    1.5,
		"e":    float64(1000),
		"s":    "text",
	}
	for k, w := range want {
		got, ok := obj.Get(k)
		if !ok {
			t.Errorf("%s: missing", k)
			continue
		}
		if !reflect.DeepEqual(got, w) {
			t.Errorf("%s = %#v (%T), want %#v (%T)", k, got, got, w, w)
		}
	}
}

func TestParse_NestedArrayAndObject(t *testing.T) {
	v, err := Parse([]byte(`{"list": [1, "two", {"k": []}]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	obj, _ := AsObject(v)
	raw, _ := obj.Get("list")
	list, ok := AsArray(raw)
	if !ok || len(list) != 3 {
		t.Fatalf("list = %#v", raw)
	}
	inner, ok := AsObject(list[2])
	if !ok {
		t.Fatalf("list[2] is %T", list[2])
	}
	k, _ := inner.Get("k")
	if arr, ok := AsArray(k); !ok || len(arr) != 0 {
		t.Errorf("k = %#v, want empty array", k)
	}
}

func TestParse_JSONC(t *testing.T) {
	src := `{
		// classes exported to the scripting engine
		"classes": {
			"Math": { "methods": {}, }, /* trailing comma */
		},
	}`
	v, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	obj, _ := AsObject(v)
	classes, _ := obj.Get("classes")
	if c, ok := AsObject(classes); !ok || c.Len() != 1 {
		t.Errorf("classes = %#v", classes)
	}
}

func TestParse_DuplicateKeyKeepsPosition(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	obj, _ := AsObject(v)
	if got := obj.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("keys = %v", got)
	}
	if a, _ := obj.Get("a"); a != int64(3) {
		t.Errorf("a = %v, want 3", a)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ``},
		{"truncated", `{"a": `},
		{"trailing data", `{} {}`},
		{"garbage", `{"a": nope}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.src)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParse_ScalarRoot(t *testing.T) {
	v, err := Parse([]byte(`"just a string"`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := AsObject(v); ok {
		t.Error("scalar root reported as object")
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.json")
	if err := os.WriteFile(path, []byte(`{"classes": {}}`), 0644); err != nil {
		t.Fatal(err)
	}
	v, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if _, ok := AsObject(v); !ok {
		t.Errorf("root = %#v", v)
	}

	_, err = ReadFile(filepath.Join(dir, "missing.json"))
	if err == nil || !strings.Contains(err.Error(), "missing.json") {
		t.Errorf("missing file error = %v", err)
	}
}

func TestNilObject(t *testing.T) {
	var o *Object
	if o.Len() != 0 || o.Keys() != nil {
		t.Error("nil object should be empty")
	}
	if _, ok := o.Get("x"); ok {
		t.Error("nil object Get should miss")
	}
	for range o.All() {
		t.Error("nil object should not iterate")
	}
	if _, ok := AsObject(o); ok {
		t.Error("typed nil object should not be map-shaped")
	}
}
