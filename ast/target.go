package ast

// ---------------------------------------------------------------------------
// Target nodes
//
// Targets mirror a subset of the expression shapes but form a disjoint
// family, so the compiler can statically tell "evaluate this" from
// "assign to this". A Target never satisfies Expr and vice versa.
// ---------------------------------------------------------------------------

// Target is the interface for assignable-target nodes.
type Target interface {
	Node
	target() // marker method
}

// TargetIdentifier represents an assignable name. Rebind false introduces
// a new local binding; true mutates an existing outer binding. The parser
// decides which based on surrounding syntax.
type TargetIdentifier struct {
	targetBase
	value  string
	rebind bool
}

// NewTargetIdentifier constructs an identifier target.
func NewTargetIdentifier(value string, rebind bool, opts ...Option) (*TargetIdentifier, error) {
	if value == "" {
		return nil, missing("TargetIdentifier", "value")
	}
	n := &TargetIdentifier{value: value, rebind: rebind}
	n.apply(opts)
	return n, nil
}

func (n *TargetIdentifier) Value() string      { return n.value }
func (n *TargetIdentifier) Rebind() bool       { return n.rebind }
func (n *TargetIdentifier) ChildNodes() []Node { return nil }

// TargetUnpack represents a destructuring assignment target.
type TargetUnpack struct {
	targetBase
	targets Children[Target]
}

// NewTargetUnpack constructs a destructuring target.
func NewTargetUnpack(targets []Target, opts ...Option) (*TargetUnpack, error) {
	for i, t := range targets {
		if t == nil {
			return nil, shapeErr("TargetUnpack", "nil target at index %d", i)
		}
	}
	n := &TargetUnpack{targets: NewChildren(targets)}
	n.apply(opts)
	return n, nil
}

func (n *TargetUnpack) Targets() Children[Target] { return n.targets }
func (n *TargetUnpack) ChildNodes() []Node        { return nodeSlice(n.targets) }

// TargetAttribute represents an assignable attribute path (value.name).
// The object being accessed is an ordinary expression; only the outermost
// attribute is the assignment destination.
type TargetAttribute struct {
	targetBase
	name  string
	value Expr
}

// NewTargetAttribute constructs an attribute target.
func NewTargetAttribute(name string, value Expr, opts ...Option) (*TargetAttribute, error) {
	if name == "" {
		return nil, missing("TargetAttribute", "name")
	}
	if value == nil {
		return nil, missing("TargetAttribute", "value")
	}
	n := &TargetAttribute{name: name, value: value}
	n.apply(opts)
	return n, nil
}

func (n *TargetAttribute) Name() string       { return n.name }
func (n *TargetAttribute) Value() Expr        { return n.value }
func (n *TargetAttribute) ChildNodes() []Node { return []Node{n.value} }

// TargetItem represents an assignable subscript (value[arg, ...]).
type TargetItem struct {
	targetBase
	value     Expr
	arguments Children[LookupArg]
}

// NewTargetItem constructs a subscript target.
func NewTargetItem(value Expr, arguments []LookupArg, opts ...Option) (*TargetItem, error) {
	if value == nil {
		return nil, missing("TargetItem", "value")
	}
	for i, arg := range arguments {
		if arg == nil {
			return nil, shapeErr("TargetItem", "nil argument at index %d", i)
		}
	}
	n := &TargetItem{value: value, arguments: NewChildren(arguments)}
	n.apply(opts)
	return n, nil
}

func (n *TargetItem) Value() Expr                    { return n.value }
func (n *TargetItem) Arguments() Children[LookupArg] { return n.arguments }
func (n *TargetItem) ChildNodes() []Node {
	return append([]Node{n.value}, nodeSlice(n.arguments)...)
}
