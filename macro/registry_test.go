package macro

import (
	"testing"

	"github.com/quill-lang/quill/ast"
)

func literalMatch(t *testing.T, token string) ast.MacroMatch {
	t.Helper()
	lit, err := ast.NewMacroLiteral(token)
	if err != nil {
		t.Fatal(err)
	}
	match, err := ast.NewMacroMatchLiteral(lit)
	if err != nil {
		t.Fatal(err)
	}
	return match
}

func argumentMatch(t *testing.T, name, parser string, props []byte) ast.MacroMatch {
	t.Helper()
	ident, err := ast.NewMacroArgument(name)
	if err != nil {
		t.Fatal(err)
	}
	loc, err := ast.ParseResourceLocation(parser)
	if err != nil {
		t.Fatal(err)
	}
	var jsonProps *ast.JSONValue
	if props != nil {
		if jsonProps, err = ast.NewJSONValue(props); err != nil {
			t.Fatal(err)
		}
	}
	match, err := ast.NewMacroMatchArgument(ident, loc, jsonProps)
	if err != nil {
		t.Fatal(err)
	}
	return match
}

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry()

	pattern := []ast.MacroMatch{
		literalMatch(t, "repeat"),
		argumentMatch(t, "count", "quill:number", nil),
	}
	id, err := r.Register("repeat", pattern)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	syntax, ok := r.Get(id)
	if !ok {
		t.Fatalf("Get(%s) not found", id)
	}
	if syntax.Name != "repeat" || len(syntax.Pattern) != 2 {
		t.Errorf("syntax = %+v", syntax)
	}

	r.Release(id)
	if _, ok := r.Get(id); ok {
		t.Error("released syntax still registered")
	}
	// Releasing again is a no-op.
	r.Release(id)
}

func TestRegisterRejectsEmpty(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register("", []ast.MacroMatch{literalMatch(t, "x")}); err == nil {
		t.Error("empty name accepted")
	}
	if _, err := r.Register("x", nil); err == nil {
		t.Error("empty pattern accepted")
	}
	if _, err := r.Register("x", []ast.MacroMatch{nil}); err == nil {
		t.Error("nil pattern element accepted")
	}
}

func TestHandleIDsUnique(t *testing.T) {
	r := NewRegistry()
	pattern := []ast.MacroMatch{literalMatch(t, "x")}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		id, err := r.Register("x", pattern)
		if err != nil {
			t.Fatalf("Register: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate handle ID %s", id)
		}
		seen[id] = true
	}
	if len(r.List()) != 10 {
		t.Errorf("List() has %d entries, want 10", len(r.List()))
	}
}

func TestSchemaValidation(t *testing.T) {
	r := NewRegistry()
	parser, err := ast.ParseResourceLocation("quill:number")
	if err != nil {
		t.Fatal(err)
	}
	if err := r.DeclareParserSchema(parser, `{min?: int, max?: int}`); err != nil {
		t.Fatalf("DeclareParserSchema: %v", err)
	}

	good := []ast.MacroMatch{argumentMatch(t, "n", "quill:number", []byte(`{"min": 0, "max": 10}`))}
	if _, err := r.Register("ranged", good); err != nil {
		t.Errorf("valid properties rejected: %v", err)
	}

	bad := []ast.MacroMatch{argumentMatch(t, "n", "quill:number", []byte(`{"min": "zero"}`))}
	if _, err := r.Register("ranged", bad); err == nil {
		t.Error("type-violating properties accepted")
	}

	// Properties omitted: fine when every schema field is optional.
	none := []ast.MacroMatch{argumentMatch(t, "n", "quill:number", nil)}
	if _, err := r.Register("plain", none); err != nil {
		t.Errorf("omitted properties rejected: %v", err)
	}

	// Parsers without a declared schema accept anything.
	free := []ast.MacroMatch{argumentMatch(t, "s", "quill:phrase", []byte(`{"anything": true}`))}
	if _, err := r.Register("free", free); err != nil {
		t.Errorf("schema-less parser rejected properties: %v", err)
	}
}

func TestDeclareParserSchemaErrors(t *testing.T) {
	r := NewRegistry()
	if err := r.DeclareParserSchema(ast.ResourceLocation{}, "{}"); err == nil {
		t.Error("empty parser location accepted")
	}
	parser, err := ast.ParseResourceLocation("quill:number")
	if err != nil {
		t.Fatal(err)
	}
	if err := r.DeclareParserSchema(parser, `{min: int &`); err == nil {
		t.Error("malformed schema accepted")
	}
}
