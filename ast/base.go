// Package ast defines the node model for the quill scripting language.
//
// Nodes are immutable value objects: every attribute is fixed at
// construction and exposed through read accessors. The parser is the only
// producer of nodes; the compiler consumes them through the closed variant
// sets (Expr, Target, MacroMatch) and the shared Children container.
package ast

// Position represents a source location.
type Position struct {
	Offset int // byte offset
	Line   int // 1-based line number
	Column int // 1-based column number
}

// Span represents a range in source code.
type Span struct {
	Start Position
	End   Position
}

// MakeSpan creates a span from start and end positions.
func MakeSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// Metadata is arbitrary data attached to a node by the parser or by
// tree-rewriting passes. It is attachment only; nothing in this package
// interprets it.
type Metadata map[string]any

// Node is the interface implemented by all AST nodes.
type Node interface {
	Span() Span
	Meta() Metadata
	ChildNodes() []Node
	node() // marker method
}

// Option attaches location or metadata to a node at construction time.
type Option func(*base)

// At sets the source span of the node being constructed.
func At(span Span) Option {
	return func(b *base) { b.span = span }
}

// WithMeta attaches metadata to the node being constructed. The map is
// copied so later mutation by the caller does not leak into the node.
func WithMeta(meta Metadata) Option {
	return func(b *base) {
		if len(meta) == 0 {
			return
		}
		m := make(Metadata, len(meta))
		for k, v := range meta {
			m[k] = v
		}
		b.meta = m
	}
}

// base carries the span and metadata shared by every node.
type base struct {
	span Span
	meta Metadata
}

func (b *base) Span() Span { return b.span }

// Meta returns a copy of the node's metadata, so callers cannot mutate
// the attached map.
func (b *base) Meta() Metadata {
	if len(b.meta) == 0 {
		return nil
	}
	m := make(Metadata, len(b.meta))
	for k, v := range b.meta {
		m[k] = v
	}
	return m
}

func (b *base) node() {}

func (b *base) apply(opts []Option) {
	for _, opt := range opts {
		opt(b)
	}
}

// exprBase marks a node as an expression variant. Expressions are also
// valid lookup and call arguments.
type exprBase struct {
	base
}

func (exprBase) expr()      {}
func (exprBase) lookupArg() {}
func (exprBase) callArg()   {}

// targetBase marks a node as an assignable-target variant. Targets are
// deliberately disjoint from expressions.
type targetBase struct {
	base
}

func (targetBase) target() {}

// macroMatchBase marks a node as a macro pattern element.
type macroMatchBase struct {
	base
}

func (macroMatchBase) macroMatch() {}

// Children is the ordered child container used for every multi-child node
// attribute. It preserves insertion order exactly and compares
// structurally. The backing slice is copied on construction and on read,
// so a container can never be mutated through an aliased slice.
type Children[T Node] struct {
	nodes []T
}

// NewChildren builds a child container from the given nodes. A nil slice
// yields an empty container.
func NewChildren[T Node](nodes []T) Children[T] {
	if len(nodes) == 0 {
		return Children[T]{}
	}
	c := Children[T]{nodes: make([]T, len(nodes))}
	copy(c.nodes, nodes)
	return c
}

// Len returns the number of children.
func (c Children[T]) Len() int { return len(c.nodes) }

// At returns the child at index i.
func (c Children[T]) At(i int) T { return c.nodes[i] }

// All returns a copy of the children in order.
func (c Children[T]) All() []T {
	if len(c.nodes) == 0 {
		return nil
	}
	out := make([]T, len(c.nodes))
	copy(out, c.nodes)
	return out
}

// Equal reports whether two containers hold structurally equal children
// in the same order.
func (c Children[T]) Equal(o Children[T]) bool {
	if len(c.nodes) != len(o.nodes) {
		return false
	}
	for i := range c.nodes {
		if !Equal(c.nodes[i], o.nodes[i]) {
			return false
		}
	}
	return true
}

// nodeSlice widens a typed child container to the []Node form used by
// generic tree walkers.
func nodeSlice[T Node](c Children[T]) []Node {
	if len(c.nodes) == 0 {
		return nil
	}
	out := make([]Node, len(c.nodes))
	for i, n := range c.nodes {
		out[i] = n
	}
	return out
}
