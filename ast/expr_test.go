package ast

import (
	"errors"
	"testing"
)

func TestExprConstruction(t *testing.T) {
	x := mustIdent(t, "x")
	y := mustIdent(t, "y")

	bin, err := NewExprBinary("+", x, y)
	if err != nil {
		t.Fatalf("NewExprBinary: %v", err)
	}
	if bin.Operator() != "+" || bin.Left() != Expr(x) || bin.Right() != Expr(y) {
		t.Errorf("binary attributes not preserved: %v %v %v", bin.Operator(), bin.Left(), bin.Right())
	}

	un, err := NewExprUnary("-", x)
	if err != nil {
		t.Fatalf("NewExprUnary: %v", err)
	}
	if un.Operator() != "-" || un.Value() != Expr(x) {
		t.Error("unary attributes not preserved")
	}

	attr, err := NewAttribute("field", x)
	if err != nil {
		t.Fatalf("NewAttribute: %v", err)
	}
	if attr.Name() != "field" || attr.Value() != Expr(x) {
		t.Error("attribute attributes not preserved")
	}
}

func TestExprMissingAttributes(t *testing.T) {
	x := mustIdent(t, "x")

	tests := []struct {
		name      string
		construct func() error
		nodeType  string
		attribute string
	}{
		{"binary operator", func() error { _, err := NewExprBinary("", x, x); return err }, "ExprBinary", "operator"},
		{"binary left", func() error { _, err := NewExprBinary("+", nil, x); return err }, "ExprBinary", "left"},
		{"binary right", func() error { _, err := NewExprBinary("+", x, nil); return err }, "ExprBinary", "right"},
		{"unary operator", func() error { _, err := NewExprUnary("", x); return err }, "ExprUnary", "operator"},
		{"unary value", func() error { _, err := NewExprUnary("-", nil); return err }, "ExprUnary", "value"},
		{"identifier value", func() error { _, err := NewIdentifier(""); return err }, "Identifier", "value"},
		{"dict item key", func() error { _, err := NewDictItem(nil, x); return err }, "DictItem", "key"},
		{"dict item value", func() error { _, err := NewDictItem(x, nil); return err }, "DictItem", "value"},
		{"unpack value", func() error { _, err := NewUnpack(UnpackSingle, nil); return err }, "Unpack", "value"},
		{"keyword name", func() error { _, err := NewKeyword("", x); return err }, "Keyword", "name"},
		{"keyword value", func() error { _, err := NewKeyword("k", nil); return err }, "Keyword", "value"},
		{"attribute name", func() error { _, err := NewAttribute("", x); return err }, "Attribute", "name"},
		{"attribute value", func() error { _, err := NewAttribute("a", nil); return err }, "Attribute", "value"},
		{"lookup value", func() error { _, err := NewLookup(nil, nil); return err }, "Lookup", "value"},
		{"call value", func() error { _, err := NewCall(nil, nil); return err }, "Call", "value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.construct()
			var miss *MissingAttributeError
			if !errors.As(err, &miss) {
				t.Fatalf("error = %v, want *MissingAttributeError", err)
			}
			if miss.NodeType != tt.nodeType || miss.Attribute != tt.attribute {
				t.Errorf("error = %v, want %s/%s", miss, tt.nodeType, tt.attribute)
			}
		})
	}
}

func TestUnpackShape(t *testing.T) {
	x := mustIdent(t, "x")

	for _, typ := range []string{UnpackSingle, UnpackDouble} {
		n, err := NewUnpack(typ, x)
		if err != nil {
			t.Errorf("NewUnpack(%q): %v", typ, err)
			continue
		}
		if n.Type() != typ {
			t.Errorf("Type() = %q, want %q", n.Type(), typ)
		}
	}

	_, err := NewUnpack("***", x)
	var shape *ShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("NewUnpack(\"***\") error = %v, want *ShapeError", err)
	}
}

func TestTupleOrdering(t *testing.T) {
	one := NewValue(1)
	two := NewValue(2)

	forward, err := NewTuple([]Expr{one, two})
	if err != nil {
		t.Fatalf("NewTuple: %v", err)
	}
	items := forward.Items()
	if items.Len() != 2 {
		t.Fatalf("Items().Len() = %d, want 2", items.Len())
	}
	if items.At(0).(*Value).Value() != int64(1) || items.At(1).(*Value).Value() != int64(2) {
		t.Error("tuple items out of order")
	}

	reversed, err := NewTuple([]Expr{NewValue(2), NewValue(1)})
	if err != nil {
		t.Fatalf("NewTuple: %v", err)
	}
	if Equal(forward, reversed) {
		t.Error("tuples with reversed items compare equal")
	}
	same, _ := NewTuple([]Expr{NewValue(1), NewValue(2)})
	if !Equal(forward, same) {
		t.Error("independently built equal tuples compare unequal")
	}
}

func TestSliceAllBoundsAbsent(t *testing.T) {
	s := NewSlice(nil, nil, nil)
	if s.Start() != nil || s.Stop() != nil || s.Step() != nil {
		t.Error("absent bounds not nil")
	}
	if len(s.ChildNodes()) != 0 {
		t.Errorf("ChildNodes() = %v, want none", s.ChildNodes())
	}

	stop := NewValue(10)
	s = NewSlice(nil, stop, nil)
	if s.Start() != nil || s.Stop() != Expr(stop) || s.Step() != nil {
		t.Error("partial bounds not preserved")
	}
}

func TestLookupAndCallArguments(t *testing.T) {
	seq := mustIdent(t, "seq")
	fn := mustIdent(t, "fn")
	idx := NewValue(0)

	lookup, err := NewLookup(seq, []LookupArg{idx, NewSlice(NewValue(1), NewValue(5), nil)})
	if err != nil {
		t.Fatalf("NewLookup: %v", err)
	}
	if lookup.Arguments().Len() != 2 {
		t.Fatalf("Arguments().Len() = %d, want 2", lookup.Arguments().Len())
	}
	if _, ok := lookup.Arguments().At(1).(*Slice); !ok {
		t.Error("slice argument lost its type")
	}

	kw, err := NewKeyword("depth", NewValue(3))
	if err != nil {
		t.Fatalf("NewKeyword: %v", err)
	}
	spread, err := NewUnpack(UnpackSingle, seq)
	if err != nil {
		t.Fatalf("NewUnpack: %v", err)
	}
	call, err := NewCall(fn, []CallArg{NewValue(1), spread, kw})
	if err != nil {
		t.Fatalf("NewCall: %v", err)
	}
	args := call.Arguments()
	if args.Len() != 3 {
		t.Fatalf("Arguments().Len() = %d, want 3", args.Len())
	}
	if _, ok := args.At(1).(*Unpack); !ok {
		t.Error("unpack argument lost its type")
	}
	if _, ok := args.At(2).(*Keyword); !ok {
		t.Error("keyword argument lost its type")
	}
}

func TestFormatString(t *testing.T) {
	fs, err := NewFormatString("hello {}", []Expr{mustIdent(t, "name")})
	if err != nil {
		t.Fatalf("NewFormatString: %v", err)
	}
	if fs.Fmt() != "hello {}" {
		t.Errorf("Fmt() = %q", fs.Fmt())
	}
	if fs.Values().Len() != 1 {
		t.Errorf("Values().Len() = %d, want 1", fs.Values().Len())
	}

	// Placeholder/value count mismatch is not validated here.
	if _, err := NewFormatString("{} {} {}", nil); err != nil {
		t.Errorf("placeholder-only template rejected: %v", err)
	}
}

func TestDictOrdering(t *testing.T) {
	item := func(k string, v int) *DictItem {
		di, err := NewDictItem(NewValue(k), NewValue(v))
		if err != nil {
			t.Fatalf("NewDictItem: %v", err)
		}
		return di
	}

	d, err := NewDict([]*DictItem{item("a", 1), item("b", 2)})
	if err != nil {
		t.Fatalf("NewDict: %v", err)
	}
	if d.Items().At(0).Key().(*Value).Value() != "a" {
		t.Error("dict items out of order")
	}

	swapped, _ := NewDict([]*DictItem{item("b", 2), item("a", 1)})
	if Equal(d, swapped) {
		t.Error("dicts with reordered items compare equal; no implicit sorting expected")
	}
}

func TestValuePayloads(t *testing.T) {
	for _, payload := range []any{int64(42), 3.14, "text", true, nil} {
		v := NewValue(payload)
		if !Equal(v, NewValue(payload)) {
			t.Errorf("Value(%v) not equal to itself", payload)
		}
	}
	if Equal(NewValue(int64(1)), NewValue("1")) {
		t.Error("values of different payload types compare equal")
	}
}

func TestValuePayloadNormalization(t *testing.T) {
	// Narrow numeric payloads canonicalize at construction, so the same
	// literal built from different Go integer types is one value.
	for _, payload := range []any{int(1), int8(1), int32(1), uint16(1)} {
		v := NewValue(payload)
		if got := v.Value(); got != int64(1) {
			t.Errorf("NewValue(%T).Value() = %T(%v), want int64(1)", payload, got, got)
		}
		if !Equal(v, NewValue(int64(1))) {
			t.Errorf("NewValue(%T) not equal to NewValue(int64)", payload)
		}
	}
	if got := NewValue(float32(1.5)).Value(); got != float64(1.5) {
		t.Errorf("NewValue(float32).Value() = %T(%v), want float64(1.5)", got, got)
	}
	if Equal(NewValue(float32(1)), NewValue(int64(1))) {
		t.Error("float and integer payloads of equal magnitude compare equal")
	}
}
