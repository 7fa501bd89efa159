package ast

// ---------------------------------------------------------------------------
// Statement and declaration nodes
// ---------------------------------------------------------------------------

// Assignment couples one target and one expression under one operator
// token. Augmented forms ("+=", "*=", ...) are distinct operator strings,
// not distinct node types.
type Assignment struct {
	base
	operator string
	target   Target
	value    Expr
}

// NewAssignment constructs an assignment node.
func NewAssignment(operator string, target Target, value Expr, opts ...Option) (*Assignment, error) {
	if operator == "" {
		return nil, missing("Assignment", "operator")
	}
	if target == nil {
		return nil, missing("Assignment", "target")
	}
	if value == nil {
		return nil, missing("Assignment", "value")
	}
	n := &Assignment{operator: operator, target: target, value: value}
	n.apply(opts)
	return n, nil
}

func (n *Assignment) Operator() string   { return n.operator }
func (n *Assignment) Target() Target     { return n.target }
func (n *Assignment) Value() Expr        { return n.value }
func (n *Assignment) ChildNodes() []Node { return []Node{n.target, n.value} }

// Decorator represents one decorator applied to a function.
type Decorator struct {
	base
	expression Expr
}

// NewDecorator constructs a decorator node.
func NewDecorator(expression Expr, opts ...Option) (*Decorator, error) {
	if expression == nil {
		return nil, missing("Decorator", "expression")
	}
	n := &Decorator{expression: expression}
	n.apply(opts)
	return n, nil
}

func (n *Decorator) Expression() Expr   { return n.expression }
func (n *Decorator) ChildNodes() []Node { return []Node{n.expression} }

// FunctionSignatureArgument declares one formal parameter. A non-nil
// default marks the parameter optional at call sites; whether required
// parameters must precede optional ones is a parser concern.
type FunctionSignatureArgument struct {
	base
	name  string
	deflt Expr
}

// NewFunctionSignatureArgument constructs a formal parameter node. The
// default may be nil.
func NewFunctionSignatureArgument(name string, deflt Expr, opts ...Option) (*FunctionSignatureArgument, error) {
	if name == "" {
		return nil, missing("FunctionSignatureArgument", "name")
	}
	n := &FunctionSignatureArgument{name: name, deflt: deflt}
	n.apply(opts)
	return n, nil
}

func (n *FunctionSignatureArgument) Name() string  { return n.name }
func (n *FunctionSignatureArgument) Default() Expr { return n.deflt }
func (n *FunctionSignatureArgument) ChildNodes() []Node {
	if n.deflt == nil {
		return nil
	}
	return []Node{n.deflt}
}

// FunctionSignature declares a function: its decorators, name and formal
// parameters. Zero decorators and zero parameters are both valid; an
// empty parameter list is still an explicitly supplied list.
type FunctionSignature struct {
	base
	decorators Children[*Decorator]
	name       string
	arguments  Children[*FunctionSignatureArgument]
}

// NewFunctionSignature constructs a function signature node. Decorators
// may be nil for a function with none.
func NewFunctionSignature(decorators []*Decorator, name string, arguments []*FunctionSignatureArgument, opts ...Option) (*FunctionSignature, error) {
	if name == "" {
		return nil, missing("FunctionSignature", "name")
	}
	for i, d := range decorators {
		if d == nil {
			return nil, shapeErr("FunctionSignature", "nil decorator at index %d", i)
		}
	}
	for i, a := range arguments {
		if a == nil {
			return nil, shapeErr("FunctionSignature", "nil argument at index %d", i)
		}
	}
	n := &FunctionSignature{
		decorators: NewChildren(decorators),
		name:       name,
		arguments:  NewChildren(arguments),
	}
	n.apply(opts)
	return n, nil
}

func (n *FunctionSignature) Decorators() Children[*Decorator] { return n.decorators }
func (n *FunctionSignature) Name() string                     { return n.name }
func (n *FunctionSignature) Arguments() Children[*FunctionSignatureArgument] {
	return n.arguments
}
func (n *FunctionSignature) ChildNodes() []Node {
	return append(nodeSlice(n.decorators), nodeSlice(n.arguments)...)
}

// ImportedIdentifier binds a name pulled in from an external module.
type ImportedIdentifier struct {
	base
	value string
}

// NewImportedIdentifier constructs an imported-name binding node.
func NewImportedIdentifier(value string, opts ...Option) (*ImportedIdentifier, error) {
	if value == "" {
		return nil, missing("ImportedIdentifier", "value")
	}
	n := &ImportedIdentifier{value: value}
	n.apply(opts)
	return n, nil
}

func (n *ImportedIdentifier) Value() string      { return n.value }
func (n *ImportedIdentifier) ChildNodes() []Node { return nil }

// ModuleRoot is the top-level container of a compiled unit. Its children
// are the unit's top-level statements in source order, including host
// command nodes the script language does not model itself.
type ModuleRoot struct {
	base
	commands Children[Node]
}

// NewModuleRoot constructs a module root node.
func NewModuleRoot(commands []Node, opts ...Option) (*ModuleRoot, error) {
	for i, c := range commands {
		if c == nil {
			return nil, shapeErr("ModuleRoot", "nil command at index %d", i)
		}
	}
	n := &ModuleRoot{commands: NewChildren(commands)}
	n.apply(opts)
	return n, nil
}

func (n *ModuleRoot) Commands() Children[Node] { return n.commands }
func (n *ModuleRoot) ChildNodes() []Node       { return nodeSlice(n.commands) }
