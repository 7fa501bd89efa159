// Package astwire serializes quill trees to and from a CBOR wire format.
//
// Trees are encoded as kind-tagged envelopes and reconstructed through
// the ast package's public constructors, so decoded trees satisfy the
// same construction invariants as parsed ones. Literal payloads arrive
// already normalized to int64 and float64 by ast.NewValue, so a decoded
// tree compares structurally equal to the one that was encoded.
package astwire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/quill-lang/quill/ast"
)

// cborEncMode uses canonical encoding so the same tree always produces
// the same bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("astwire: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// wireNode is the envelope for one encoded node. Field usage depends on
// the kind; unused fields are omitted from the encoding.
type wireNode struct {
	Kind string   `cbor:"k"`
	Span ast.Span `cbor:"s"`

	Op     string       `cbor:"op,omitempty"`
	Name   string       `cbor:"name,omitempty"`
	Str    string       `cbor:"str,omitempty"`
	Rebind bool         `cbor:"rb,omitempty"`
	Pay    *wirePayload `cbor:"pl,omitempty"`

	Value  *wireNode `cbor:"v,omitempty"`
	Left   *wireNode `cbor:"l,omitempty"`
	Right  *wireNode `cbor:"r,omitempty"`
	Key    *wireNode `cbor:"key,omitempty"`
	Target *wireNode `cbor:"tgt,omitempty"`
	Start  *wireNode `cbor:"lo,omitempty"`
	Stop   *wireNode `cbor:"hi,omitempty"`
	Step   *wireNode `cbor:"st,omitempty"`
	Ident  *wireNode `cbor:"ident,omitempty"`

	Items []*wireNode `cbor:"items,omitempty"`
	Args  []*wireNode `cbor:"args,omitempty"`

	Parser string    `cbor:"parser,omitempty"`
	Props  []byte    `cbor:"props,omitempty"`
	Prefix *string   `cbor:"pfx,omitempty"`
	Unpack *string   `cbor:"unp,omitempty"`
	Conv   string    `cbor:"conv,omitempty"`
	Cursor *ast.Span `cbor:"cur,omitempty"`
}

// wirePayload carries a literal payload with its dynamic kind.
type wirePayload struct {
	Kind  string  `cbor:"k"`
	Int   int64   `cbor:"i,omitempty"`
	Float float64 `cbor:"f,omitempty"`
	Str   string  `cbor:"s,omitempty"`
	Bool  bool    `cbor:"b,omitempty"`
}

// Marshal serializes a tree to canonical CBOR bytes.
func Marshal(node ast.Node) ([]byte, error) {
	w, err := encode(node)
	if err != nil {
		return nil, fmt.Errorf("astwire: marshal: %w", err)
	}
	return cborEncMode.Marshal(w)
}

// Unmarshal reconstructs a tree from CBOR bytes.
func Unmarshal(data []byte) (ast.Node, error) {
	var w wireNode
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("astwire: unmarshal: %w", err)
	}
	node, err := decode(&w)
	if err != nil {
		return nil, fmt.Errorf("astwire: unmarshal: %w", err)
	}
	return node, nil
}
