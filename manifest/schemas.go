package manifest

import (
	"fmt"

	"github.com/quill-lang/quill/ast"
	"github.com/quill-lang/quill/macro"
)

// DeclareSchemas applies the manifest's macro parser declarations to a
// registry, so patterns registered afterwards are validated against the
// project's schemas.
func (m *Manifest) DeclareSchemas(registry *macro.Registry) error {
	for _, decl := range m.Macro.Parsers {
		loc, err := ast.ParseResourceLocation(decl.Location)
		if err != nil {
			return fmt.Errorf("macro parser %q: %w", decl.Location, err)
		}
		if err := registry.DeclareParserSchema(loc, decl.Schema); err != nil {
			return fmt.Errorf("macro parser %q: %w", decl.Location, err)
		}
	}
	return nil
}
