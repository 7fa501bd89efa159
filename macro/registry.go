// Package macro registers macro-defined command syntaxes.
//
// A macro declares the pattern it matches as an ordered sequence of
// ast.MacroMatch elements. The registry stores registered patterns under
// opaque handle IDs and validates each capture slot's parser properties
// against the CUE schema declared for that argument parser. It does not
// resolve macros; that is the compiler's job.
package macro

import (
	"fmt"
	"sync"
	"sync/atomic"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/quill-lang/quill/ast"
)

// Syntax is one registered macro command syntax.
type Syntax struct {
	ID      string
	Name    string
	Pattern []ast.MacroMatch
}

// Registry maps opaque handle IDs to registered macro syntaxes.
type Registry struct {
	mu      sync.RWMutex
	cuectx  *cue.Context
	schemas map[string]cue.Value
	macros  map[string]*Syntax
	nextID  atomic.Uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cuectx:  cuecontext.New(),
		schemas: make(map[string]cue.Value),
		macros:  make(map[string]*Syntax),
	}
}

// DeclareParserSchema declares the CUE schema constraining the properties
// payload accepted by the given argument parser. Re-declaring a parser
// replaces its schema.
func (r *Registry) DeclareParserSchema(parser ast.ResourceLocation, schema string) error {
	if parser.IsZero() {
		return fmt.Errorf("macro: declare schema: empty parser location")
	}
	value := r.cuectx.CompileString(schema)
	if err := value.Err(); err != nil {
		return fmt.Errorf("macro: schema for %s: %w", parser, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[parser.String()] = value
	return nil
}

// Register stores a macro syntax and returns an opaque handle ID. Every
// capture slot whose parser has a declared schema must carry properties
// that satisfy it; slots without properties are checked against the
// schema's defaults-only instance.
func (r *Registry) Register(name string, pattern []ast.MacroMatch) (string, error) {
	if name == "" {
		return "", fmt.Errorf("macro: register: empty name")
	}
	if len(pattern) == 0 {
		return "", fmt.Errorf("macro: register %s: empty pattern", name)
	}
	for i, match := range pattern {
		if match == nil {
			return "", fmt.Errorf("macro: register %s: nil pattern element at index %d", name, i)
		}
		arg, ok := match.(*ast.MacroMatchArgument)
		if !ok {
			continue
		}
		if err := r.validateProperties(arg); err != nil {
			return "", fmt.Errorf("macro: register %s: slot %d: %w", name, i, err)
		}
	}

	id := fmt.Sprintf("m-%d", r.nextID.Add(1))
	syntax := &Syntax{
		ID:      id,
		Name:    name,
		Pattern: append([]ast.MacroMatch(nil), pattern...),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.macros[id] = syntax
	return id, nil
}

// Get returns the syntax registered under the given handle ID.
func (r *Registry) Get(id string) (*Syntax, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	syntax, ok := r.macros[id]
	return syntax, ok
}

// Release removes a registered syntax. Releasing an unknown ID is a
// no-op.
func (r *Registry) Release(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.macros, id)
}

// List returns the currently registered syntaxes in no particular order.
func (r *Registry) List() []*Syntax {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Syntax, 0, len(r.macros))
	for _, syntax := range r.macros {
		out = append(out, syntax)
	}
	return out
}

func (r *Registry) validateProperties(arg *ast.MacroMatchArgument) error {
	r.mu.RLock()
	schema, declared := r.schemas[arg.MatchArgumentParser().String()]
	r.mu.RUnlock()
	if !declared {
		return nil
	}

	props := arg.MatchArgumentProperties()
	if props == nil {
		// No payload: the schema itself must be satisfiable without
		// concrete input, i.e. all fields optional or defaulted.
		if err := schema.Validate(); err != nil {
			return fmt.Errorf("parser %s requires properties: %w", arg.MatchArgumentParser(), err)
		}
		return nil
	}

	data := r.cuectx.CompileBytes(props.Raw())
	if err := data.Err(); err != nil {
		return fmt.Errorf("parser %s properties: %w", arg.MatchArgumentParser(), err)
	}
	if err := schema.Unify(data).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("parser %s properties: %w", arg.MatchArgumentParser(), err)
	}
	return nil
}
