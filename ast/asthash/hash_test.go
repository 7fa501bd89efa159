package asthash

import (
	"testing"

	"github.com/quill-lang/quill/ast"
)

func TestTagUniqueness(t *testing.T) {
	seen := make(map[byte]bool, len(allTags))
	for _, tag := range allTags {
		if seen[tag] {
			t.Errorf("duplicate tag: 0x%02X", tag)
		}
		seen[tag] = true
	}
}

func TestTagsInRange(t *testing.T) {
	for _, tag := range allTags {
		if tag >= 0xFE {
			t.Errorf("tag 0x%02X is in reserved range 0xFE-0xFF", tag)
		}
	}
}

func TestHashVersionNonZero(t *testing.T) {
	if HashVersion == 0 {
		t.Error("HashVersion must be non-zero")
	}
}

func buildTree(t *testing.T, operand int) ast.Node {
	t.Helper()
	target, err := ast.NewTargetIdentifier("x", false)
	if err != nil {
		t.Fatal(err)
	}
	left, err := ast.NewIdentifier("y")
	if err != nil {
		t.Fatal(err)
	}
	sum, err := ast.NewExprBinary("+", left, ast.NewValue(operand))
	if err != nil {
		t.Fatal(err)
	}
	assign, err := ast.NewAssignment("=", target, sum)
	if err != nil {
		t.Fatal(err)
	}
	return assign
}

func TestSumDeterministic(t *testing.T) {
	a := Sum(buildTree(t, 1))
	b := Sum(buildTree(t, 1))
	if a != b {
		t.Error("identical trees hash differently")
	}
}

func TestSumDistinguishesTrees(t *testing.T) {
	if Sum(buildTree(t, 1)) == Sum(buildTree(t, 2)) {
		t.Error("different trees share a hash")
	}
}

func TestSumIgnoresSpans(t *testing.T) {
	span := ast.MakeSpan(ast.Position{Offset: 100, Line: 5, Column: 1}, ast.Position{Offset: 101, Line: 5, Column: 2})
	plain, err := ast.NewIdentifier("x")
	if err != nil {
		t.Fatal(err)
	}
	located, err := ast.NewIdentifier("x", ast.At(span))
	if err != nil {
		t.Fatal(err)
	}
	if Sum(plain) != Sum(located) {
		t.Error("span leaked into the content hash")
	}
}

func TestSumPayloadKinds(t *testing.T) {
	// A string payload and a bool/int payload with the same rendering must
	// not collide.
	pairs := [][2]any{
		{"1", int64(1)},
		{"true", true},
		{nil, "nil"},
		{1.0, int64(1)},
	}
	for _, pair := range pairs {
		a := Sum(ast.NewValue(pair[0]))
		b := Sum(ast.NewValue(pair[1]))
		if a == b {
			t.Errorf("payloads %v and %v share a hash", pair[0], pair[1])
		}
	}
}

func TestSumOrderSensitive(t *testing.T) {
	one := ast.NewValue(1)
	two := ast.NewValue(2)
	forward, err := ast.NewTuple([]ast.Expr{one, two})
	if err != nil {
		t.Fatal(err)
	}
	reversed, err := ast.NewTuple([]ast.Expr{ast.NewValue(2), ast.NewValue(1)})
	if err != nil {
		t.Fatal(err)
	}
	if Sum(forward) == Sum(reversed) {
		t.Error("child order not reflected in the hash")
	}
}

func TestSumOptionalFields(t *testing.T) {
	value, err := ast.NewIdentifier("x")
	if err != nil {
		t.Fatal(err)
	}
	plain, err := ast.NewInterpolation(nil, nil, "str", value)
	if err != nil {
		t.Fatal(err)
	}
	empty := ""
	withEmpty, err := ast.NewInterpolation(&empty, nil, "str", value)
	if err != nil {
		t.Fatal(err)
	}
	if Sum(plain) == Sum(withEmpty) {
		t.Error("absent and empty prefix hash identically")
	}
}

func TestHexSum(t *testing.T) {
	digest := HexSum(buildTree(t, 1))
	if len(digest) != 64 {
		t.Errorf("HexSum length = %d, want 64", len(digest))
	}
}
