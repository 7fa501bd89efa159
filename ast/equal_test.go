package ast

import "testing"

// buildAssignment constructs x = obj.items[0] with distinct node
// instances each call, so tests can compare independently built trees.
func buildAssignment(t *testing.T) *Assignment {
	t.Helper()
	target, err := NewTargetIdentifier("x", false)
	if err != nil {
		t.Fatal(err)
	}
	obj := mustIdent(t, "obj")
	items, err := NewAttribute("items", obj)
	if err != nil {
		t.Fatal(err)
	}
	lookup, err := NewLookup(items, []LookupArg{NewValue(0)})
	if err != nil {
		t.Fatal(err)
	}
	assign, err := NewAssignment("=", target, lookup)
	if err != nil {
		t.Fatal(err)
	}
	return assign
}

func TestEqualIndependentConstruction(t *testing.T) {
	if !Equal(buildAssignment(t), buildAssignment(t)) {
		t.Error("independently built identical trees compare unequal")
	}
}

func TestEqualIgnoresSpanAndMeta(t *testing.T) {
	span := MakeSpan(Position{Offset: 1}, Position{Offset: 2})
	a, _ := NewIdentifier("x")
	b, _ := NewIdentifier("x", At(span), WithMeta(Metadata{"note": "here"}))
	if !Equal(a, b) {
		t.Error("span/metadata leaked into structural equality")
	}
}

func TestEqualDifferentVariants(t *testing.T) {
	if Equal(mustIdent(t, "x"), NewValue("x")) {
		t.Error("Identifier equals Value")
	}
	tup, _ := NewTuple([]Expr{NewValue(1)})
	lst, _ := NewList([]Expr{NewValue(1)})
	if Equal(tup, lst) {
		t.Error("Tuple equals List with same items")
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{mustIdent(t, "x"), "Identifier"},
		{NewValue(1), "Value"},
		{NewSlice(nil, nil, nil), "Slice"},
	}
	for _, tt := range tests {
		if got := Kind(tt.node); got != tt.want {
			t.Errorf("Kind(%T) = %q, want %q", tt.node, got, tt.want)
		}
	}
}

func TestWalkPreOrder(t *testing.T) {
	assign := buildAssignment(t)

	var kinds []string
	Walk(assign, func(n Node) bool {
		kinds = append(kinds, Kind(n))
		return true
	})

	want := []string{"Assignment", "TargetIdentifier", "Lookup", "Attribute", "Identifier", "Value"}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("visited %v, want %v", kinds, want)
		}
	}
}

func TestWalkPrune(t *testing.T) {
	assign := buildAssignment(t)

	count := 0
	Walk(assign, func(n Node) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("pruned walk visited %d nodes, want 1", count)
	}
}
