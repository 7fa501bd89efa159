package ast

import "reflect"

// Kind returns the variant name of a node, used in diagnostics and as the
// wire-format kind tag.
func Kind(n Node) string {
	switch n.(type) {
	case *ExprBinary:
		return "ExprBinary"
	case *ExprUnary:
		return "ExprUnary"
	case *Value:
		return "Value"
	case *Identifier:
		return "Identifier"
	case *FormatString:
		return "FormatString"
	case *Tuple:
		return "Tuple"
	case *List:
		return "List"
	case *DictItem:
		return "DictItem"
	case *Dict:
		return "Dict"
	case *Slice:
		return "Slice"
	case *Unpack:
		return "Unpack"
	case *Keyword:
		return "Keyword"
	case *Attribute:
		return "Attribute"
	case *Lookup:
		return "Lookup"
	case *Call:
		return "Call"
	case *TargetIdentifier:
		return "TargetIdentifier"
	case *TargetUnpack:
		return "TargetUnpack"
	case *TargetAttribute:
		return "TargetAttribute"
	case *TargetItem:
		return "TargetItem"
	case *Assignment:
		return "Assignment"
	case *Decorator:
		return "Decorator"
	case *FunctionSignatureArgument:
		return "FunctionSignatureArgument"
	case *FunctionSignature:
		return "FunctionSignature"
	case *ImportedIdentifier:
		return "ImportedIdentifier"
	case *ModuleRoot:
		return "ModuleRoot"
	case *MacroLiteral:
		return "MacroLiteral"
	case *MacroArgument:
		return "MacroArgument"
	case *MacroMatchLiteral:
		return "MacroMatchLiteral"
	case *MacroMatchArgument:
		return "MacroMatchArgument"
	case *DeferredRoot:
		return "DeferredRoot"
	case *Interpolation:
		return "Interpolation"
	default:
		return "Unknown"
	}
}

// Equal reports structural equality of two trees: same variant and
// pairwise-equal attributes, including child order. Source spans and
// attached metadata are ignored.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *ExprBinary:
		y, ok := b.(*ExprBinary)
		return ok && x.operator == y.operator && Equal(x.left, y.left) && Equal(x.right, y.right)
	case *ExprUnary:
		y, ok := b.(*ExprUnary)
		return ok && x.operator == y.operator && Equal(x.value, y.value)
	case *Value:
		y, ok := b.(*Value)
		return ok && reflect.DeepEqual(x.value, y.value)
	case *Identifier:
		y, ok := b.(*Identifier)
		return ok && x.value == y.value
	case *FormatString:
		y, ok := b.(*FormatString)
		return ok && x.fmt == y.fmt && x.values.Equal(y.values)
	case *Tuple:
		y, ok := b.(*Tuple)
		return ok && x.items.Equal(y.items)
	case *List:
		y, ok := b.(*List)
		return ok && x.items.Equal(y.items)
	case *DictItem:
		y, ok := b.(*DictItem)
		return ok && Equal(x.key, y.key) && Equal(x.value, y.value)
	case *Dict:
		y, ok := b.(*Dict)
		return ok && x.items.Equal(y.items)
	case *Slice:
		y, ok := b.(*Slice)
		return ok && equalOpt(x.start, y.start) && equalOpt(x.stop, y.stop) && equalOpt(x.step, y.step)
	case *Unpack:
		y, ok := b.(*Unpack)
		return ok && x.typ == y.typ && Equal(x.value, y.value)
	case *Keyword:
		y, ok := b.(*Keyword)
		return ok && x.name == y.name && Equal(x.value, y.value)
	case *Attribute:
		y, ok := b.(*Attribute)
		return ok && x.name == y.name && Equal(x.value, y.value)
	case *Lookup:
		y, ok := b.(*Lookup)
		return ok && Equal(x.value, y.value) && x.arguments.Equal(y.arguments)
	case *Call:
		y, ok := b.(*Call)
		return ok && Equal(x.value, y.value) && x.arguments.Equal(y.arguments)
	case *TargetIdentifier:
		y, ok := b.(*TargetIdentifier)
		return ok && x.value == y.value && x.rebind == y.rebind
	case *TargetUnpack:
		y, ok := b.(*TargetUnpack)
		return ok && x.targets.Equal(y.targets)
	case *TargetAttribute:
		y, ok := b.(*TargetAttribute)
		return ok && x.name == y.name && Equal(x.value, y.value)
	case *TargetItem:
		y, ok := b.(*TargetItem)
		return ok && Equal(x.value, y.value) && x.arguments.Equal(y.arguments)
	case *Assignment:
		y, ok := b.(*Assignment)
		return ok && x.operator == y.operator && Equal(x.target, y.target) && Equal(x.value, y.value)
	case *Decorator:
		y, ok := b.(*Decorator)
		return ok && Equal(x.expression, y.expression)
	case *FunctionSignatureArgument:
		y, ok := b.(*FunctionSignatureArgument)
		return ok && x.name == y.name && equalOpt(x.deflt, y.deflt)
	case *FunctionSignature:
		y, ok := b.(*FunctionSignature)
		return ok && x.name == y.name && x.decorators.Equal(y.decorators) && x.arguments.Equal(y.arguments)
	case *ImportedIdentifier:
		y, ok := b.(*ImportedIdentifier)
		return ok && x.value == y.value
	case *ModuleRoot:
		y, ok := b.(*ModuleRoot)
		return ok && x.commands.Equal(y.commands)
	case *MacroLiteral:
		y, ok := b.(*MacroLiteral)
		return ok && x.value == y.value
	case *MacroArgument:
		y, ok := b.(*MacroArgument)
		return ok && x.value == y.value
	case *MacroMatchLiteral:
		y, ok := b.(*MacroMatchLiteral)
		return ok && Equal(x.match, y.match)
	case *MacroMatchArgument:
		y, ok := b.(*MacroMatchArgument)
		return ok && Equal(x.matchIdentifier, y.matchIdentifier) &&
			x.matchArgumentParser == y.matchArgumentParser &&
			x.matchArgumentProperties.Equal(y.matchArgumentProperties)
	case *DeferredRoot:
		y, ok := b.(*DeferredRoot)
		return ok && x.stream.Pos() == y.stream.Pos()
	case *Interpolation:
		y, ok := b.(*Interpolation)
		return ok && x.prefix == y.prefix && x.hasPrefix == y.hasPrefix &&
			x.unpack == y.unpack && x.hasUnpack == y.hasUnpack &&
			x.converter == y.converter && Equal(x.value, y.value)
	default:
		return false
	}
}

// equalOpt compares optional child expressions where nil means absent.
func equalOpt(a, b Expr) bool {
	if a == nil || b == nil {
		return (a == nil) == (b == nil)
	}
	return Equal(a, b)
}
