package ast

// ---------------------------------------------------------------------------
// Expression nodes
// ---------------------------------------------------------------------------

// Expr is the interface for expression nodes. The variant set is closed:
// only the types in this file satisfy it.
type Expr interface {
	Node
	expr() // marker method
}

// LookupArg is a subscript argument: an expression or a slice.
type LookupArg interface {
	Node
	lookupArg() // marker method
}

// CallArg is a call argument: an expression, an unpack, or a keyword.
type CallArg interface {
	Node
	callArg() // marker method
}

// ExprBinary represents a binary operator applied to two expressions. The
// operator is an opaque symbolic token; this package does not interpret it.
type ExprBinary struct {
	exprBase
	operator string
	left     Expr
	right    Expr
}

// NewExprBinary constructs a binary expression node.
func NewExprBinary(operator string, left, right Expr, opts ...Option) (*ExprBinary, error) {
	if operator == "" {
		return nil, missing("ExprBinary", "operator")
	}
	if left == nil {
		return nil, missing("ExprBinary", "left")
	}
	if right == nil {
		return nil, missing("ExprBinary", "right")
	}
	n := &ExprBinary{operator: operator, left: left, right: right}
	n.apply(opts)
	return n, nil
}

func (n *ExprBinary) Operator() string   { return n.operator }
func (n *ExprBinary) Left() Expr         { return n.left }
func (n *ExprBinary) Right() Expr        { return n.right }
func (n *ExprBinary) ChildNodes() []Node { return []Node{n.left, n.right} }

// ExprUnary represents a unary operator applied to one expression.
type ExprUnary struct {
	exprBase
	operator string
	value    Expr
}

// NewExprUnary constructs a unary expression node.
func NewExprUnary(operator string, value Expr, opts ...Option) (*ExprUnary, error) {
	if operator == "" {
		return nil, missing("ExprUnary", "operator")
	}
	if value == nil {
		return nil, missing("ExprUnary", "value")
	}
	n := &ExprUnary{operator: operator, value: value}
	n.apply(opts)
	return n, nil
}

func (n *ExprUnary) Operator() string   { return n.operator }
func (n *ExprUnary) Value() Expr        { return n.value }
func (n *ExprUnary) ChildNodes() []Node { return []Node{n.value} }

// Value holds a resolved literal payload: a number, string, bool, or the
// language's none literal (a nil payload).
type Value struct {
	exprBase
	value any
}

// NewValue constructs a literal value node. A nil payload is the none
// literal. Numeric payloads are normalized to int64 and float64 at
// construction, so structural equality, hashing and the wire codec all
// see one canonical representation.
func NewValue(value any, opts ...Option) *Value {
	n := &Value{value: normalizePayload(value)}
	n.apply(opts)
	return n
}

func normalizePayload(value any) any {
	switch v := value.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case float32:
		return float64(v)
	default:
		return value
	}
}

func (n *Value) Value() any         { return n.value }
func (n *Value) ChildNodes() []Node { return nil }

// Identifier represents a variable reference.
type Identifier struct {
	exprBase
	value string
}

// NewIdentifier constructs an identifier node.
func NewIdentifier(value string, opts ...Option) (*Identifier, error) {
	if value == "" {
		return nil, missing("Identifier", "value")
	}
	n := &Identifier{value: value}
	n.apply(opts)
	return n, nil
}

func (n *Identifier) Value() string      { return n.value }
func (n *Identifier) ChildNodes() []Node { return nil }

// FormatString represents a formatted string. Fmt contains positional
// placeholders resolved against Values in order; placeholder count is not
// cross-validated here, that is a parser/compiler concern.
type FormatString struct {
	exprBase
	fmt    string
	values Children[Expr]
}

// NewFormatString constructs a format string node. An empty template with
// no values is valid.
func NewFormatString(fmt string, values []Expr, opts ...Option) (*FormatString, error) {
	for i, v := range values {
		if v == nil {
			return nil, shapeErr("FormatString", "nil expression at index %d", i)
		}
	}
	n := &FormatString{fmt: fmt, values: NewChildren(values)}
	n.apply(opts)
	return n, nil
}

func (n *FormatString) Fmt() string            { return n.fmt }
func (n *FormatString) Values() Children[Expr] { return n.values }
func (n *FormatString) ChildNodes() []Node     { return nodeSlice(n.values) }

// Tuple represents a tuple display. Item order is semantically
// significant.
type Tuple struct {
	exprBase
	items Children[Expr]
}

// NewTuple constructs a tuple node.
func NewTuple(items []Expr, opts ...Option) (*Tuple, error) {
	for i, item := range items {
		if item == nil {
			return nil, shapeErr("Tuple", "nil expression at index %d", i)
		}
	}
	n := &Tuple{items: NewChildren(items)}
	n.apply(opts)
	return n, nil
}

func (n *Tuple) Items() Children[Expr] { return n.items }
func (n *Tuple) ChildNodes() []Node    { return nodeSlice(n.items) }

// List represents a list display.
type List struct {
	exprBase
	items Children[Expr]
}

// NewList constructs a list node.
func NewList(items []Expr, opts ...Option) (*List, error) {
	for i, item := range items {
		if item == nil {
			return nil, shapeErr("List", "nil expression at index %d", i)
		}
	}
	n := &List{items: NewChildren(items)}
	n.apply(opts)
	return n, nil
}

func (n *List) Items() Children[Expr] { return n.items }
func (n *List) ChildNodes() []Node    { return nodeSlice(n.items) }

// DictItem represents one key-value entry of a dict display.
type DictItem struct {
	base
	key   Expr
	value Expr
}

// NewDictItem constructs a dict entry node.
func NewDictItem(key, value Expr, opts ...Option) (*DictItem, error) {
	if key == nil {
		return nil, missing("DictItem", "key")
	}
	if value == nil {
		return nil, missing("DictItem", "value")
	}
	n := &DictItem{key: key, value: value}
	n.apply(opts)
	return n, nil
}

func (n *DictItem) Key() Expr          { return n.key }
func (n *DictItem) Value() Expr        { return n.value }
func (n *DictItem) ChildNodes() []Node { return []Node{n.key, n.value} }

// Dict represents a dict display. Entries keep the order they were
// written in; duplicate keys are not collapsed here.
type Dict struct {
	exprBase
	items Children[*DictItem]
}

// NewDict constructs a dict node.
func NewDict(items []*DictItem, opts ...Option) (*Dict, error) {
	for i, item := range items {
		if item == nil {
			return nil, shapeErr("Dict", "nil item at index %d", i)
		}
	}
	n := &Dict{items: NewChildren(items)}
	n.apply(opts)
	return n, nil
}

func (n *Dict) Items() Children[*DictItem] { return n.items }
func (n *Dict) ChildNodes() []Node         { return nodeSlice(n.items) }

// Slice represents a slice expression inside a subscript. Any subset of
// start, stop and step may be absent (nil).
type Slice struct {
	base
	start Expr
	stop  Expr
	step  Expr
}

// NewSlice constructs a slice node. All three bounds may be nil.
func NewSlice(start, stop, step Expr, opts ...Option) *Slice {
	n := &Slice{start: start, stop: stop, step: step}
	n.apply(opts)
	return n
}

func (n *Slice) Start() Expr { return n.start }
func (n *Slice) Stop() Expr  { return n.stop }
func (n *Slice) Step() Expr  { return n.step }
func (n *Slice) ChildNodes() []Node {
	var out []Node
	for _, e := range []Expr{n.start, n.stop, n.step} {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}
func (*Slice) lookupArg() {}

// UnpackSingle and UnpackDouble are the two spread forms a call or
// sequence display can contain.
const (
	UnpackSingle = "*"
	UnpackDouble = "**"
)

// Unpack marks a spread argument in a call or sequence display.
type Unpack struct {
	base
	typ   string
	value Expr
}

// NewUnpack constructs an unpack node. The type must be UnpackSingle or
// UnpackDouble.
func NewUnpack(typ string, value Expr, opts ...Option) (*Unpack, error) {
	if typ == "" {
		return nil, missing("Unpack", "type")
	}
	if typ != UnpackSingle && typ != UnpackDouble {
		return nil, shapeErr("Unpack", "invalid unpack type %q", typ)
	}
	if value == nil {
		return nil, missing("Unpack", "value")
	}
	n := &Unpack{typ: typ, value: value}
	n.apply(opts)
	return n, nil
}

func (n *Unpack) Type() string       { return n.typ }
func (n *Unpack) Value() Expr        { return n.value }
func (n *Unpack) ChildNodes() []Node { return []Node{n.value} }
func (*Unpack) callArg()             {}

// Keyword represents a named call argument.
type Keyword struct {
	base
	name  string
	value Expr
}

// NewKeyword constructs a keyword argument node.
func NewKeyword(name string, value Expr, opts ...Option) (*Keyword, error) {
	if name == "" {
		return nil, missing("Keyword", "name")
	}
	if value == nil {
		return nil, missing("Keyword", "value")
	}
	n := &Keyword{name: name, value: value}
	n.apply(opts)
	return n, nil
}

func (n *Keyword) Name() string       { return n.name }
func (n *Keyword) Value() Expr        { return n.value }
func (n *Keyword) ChildNodes() []Node { return []Node{n.value} }
func (*Keyword) callArg()             {}

// Attribute represents attribute access (value.name).
type Attribute struct {
	exprBase
	name  string
	value Expr
}

// NewAttribute constructs an attribute access node.
func NewAttribute(name string, value Expr, opts ...Option) (*Attribute, error) {
	if name == "" {
		return nil, missing("Attribute", "name")
	}
	if value == nil {
		return nil, missing("Attribute", "value")
	}
	n := &Attribute{name: name, value: value}
	n.apply(opts)
	return n, nil
}

func (n *Attribute) Name() string       { return n.name }
func (n *Attribute) Value() Expr        { return n.value }
func (n *Attribute) ChildNodes() []Node { return []Node{n.value} }

// Lookup represents subscript access (value[arg, ...]). Each argument is
// an expression or a slice.
type Lookup struct {
	exprBase
	value     Expr
	arguments Children[LookupArg]
}

// NewLookup constructs a subscript access node.
func NewLookup(value Expr, arguments []LookupArg, opts ...Option) (*Lookup, error) {
	if value == nil {
		return nil, missing("Lookup", "value")
	}
	for i, arg := range arguments {
		if arg == nil {
			return nil, shapeErr("Lookup", "nil argument at index %d", i)
		}
	}
	n := &Lookup{value: value, arguments: NewChildren(arguments)}
	n.apply(opts)
	return n, nil
}

func (n *Lookup) Value() Expr                    { return n.value }
func (n *Lookup) Arguments() Children[LookupArg] { return n.arguments }
func (n *Lookup) ChildNodes() []Node {
	return append([]Node{n.value}, nodeSlice(n.arguments)...)
}

// Call represents a call expression. Argument order is call order.
type Call struct {
	exprBase
	value     Expr
	arguments Children[CallArg]
}

// NewCall constructs a call node.
func NewCall(value Expr, arguments []CallArg, opts ...Option) (*Call, error) {
	if value == nil {
		return nil, missing("Call", "value")
	}
	for i, arg := range arguments {
		if arg == nil {
			return nil, shapeErr("Call", "nil argument at index %d", i)
		}
	}
	n := &Call{value: value, arguments: NewChildren(arguments)}
	n.apply(opts)
	return n, nil
}

func (n *Call) Value() Expr                  { return n.value }
func (n *Call) Arguments() Children[CallArg] { return n.arguments }
func (n *Call) ChildNodes() []Node {
	return append([]Node{n.value}, nodeSlice(n.arguments)...)
}
