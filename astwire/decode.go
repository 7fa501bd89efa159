package astwire

import (
	"fmt"

	"github.com/quill-lang/quill/ast"
)

func decode(w *wireNode) (ast.Node, error) {
	if w == nil {
		return nil, fmt.Errorf("nil envelope")
	}
	at := ast.At(w.Span)

	switch w.Kind {
	case "ExprBinary":
		left, err := decodeExpr(w.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(w.Right)
		if err != nil {
			return nil, err
		}
		return ast.NewExprBinary(w.Op, left, right, at)

	case "ExprUnary":
		value, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewExprUnary(w.Op, value, at)

	case "Value":
		payload, err := decodePayload(w.Pay)
		if err != nil {
			return nil, err
		}
		return ast.NewValue(payload, at), nil

	case "Identifier":
		return ast.NewIdentifier(w.Str, at)

	case "FormatString":
		values, err := decodeExprs(w.Items)
		if err != nil {
			return nil, err
		}
		return ast.NewFormatString(w.Str, values, at)

	case "Tuple":
		items, err := decodeExprs(w.Items)
		if err != nil {
			return nil, err
		}
		return ast.NewTuple(items, at)

	case "List":
		items, err := decodeExprs(w.Items)
		if err != nil {
			return nil, err
		}
		return ast.NewList(items, at)

	case "DictItem":
		key, err := decodeExpr(w.Key)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewDictItem(key, value, at)

	case "Dict":
		items := make([]*ast.DictItem, len(w.Items))
		for i, iw := range w.Items {
			node, err := decode(iw)
			if err != nil {
				return nil, err
			}
			item, ok := node.(*ast.DictItem)
			if !ok {
				return nil, fmt.Errorf("dict item %d: unexpected kind %s", i, iw.Kind)
			}
			items[i] = item
		}
		return ast.NewDict(items, at)

	case "Slice":
		start, err := decodeOptExpr(w.Start)
		if err != nil {
			return nil, err
		}
		stop, err := decodeOptExpr(w.Stop)
		if err != nil {
			return nil, err
		}
		step, err := decodeOptExpr(w.Step)
		if err != nil {
			return nil, err
		}
		return ast.NewSlice(start, stop, step, at), nil

	case "Unpack":
		value, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewUnpack(w.Op, value, at)

	case "Keyword":
		value, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewKeyword(w.Name, value, at)

	case "Attribute":
		value, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewAttribute(w.Name, value, at)

	case "Lookup":
		value, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		args, err := decodeLookupArgs(w.Args)
		if err != nil {
			return nil, err
		}
		return ast.NewLookup(value, args, at)

	case "Call":
		value, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		args, err := decodeCallArgs(w.Args)
		if err != nil {
			return nil, err
		}
		return ast.NewCall(value, args, at)

	case "TargetIdentifier":
		return ast.NewTargetIdentifier(w.Str, w.Rebind, at)

	case "TargetUnpack":
		targets := make([]ast.Target, len(w.Items))
		for i, iw := range w.Items {
			target, err := decodeTarget(iw)
			if err != nil {
				return nil, err
			}
			targets[i] = target
		}
		return ast.NewTargetUnpack(targets, at)

	case "TargetAttribute":
		value, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewTargetAttribute(w.Name, value, at)

	case "TargetItem":
		value, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		args, err := decodeLookupArgs(w.Args)
		if err != nil {
			return nil, err
		}
		return ast.NewTargetItem(value, args, at)

	case "Assignment":
		target, err := decodeTarget(w.Target)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewAssignment(w.Op, target, value, at)

	case "Decorator":
		expr, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewDecorator(expr, at)

	case "FunctionSignatureArgument":
		deflt, err := decodeOptExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewFunctionSignatureArgument(w.Name, deflt, at)

	case "FunctionSignature":
		decorators := make([]*ast.Decorator, len(w.Items))
		for i, iw := range w.Items {
			node, err := decode(iw)
			if err != nil {
				return nil, err
			}
			dec, ok := node.(*ast.Decorator)
			if !ok {
				return nil, fmt.Errorf("decorator %d: unexpected kind %s", i, iw.Kind)
			}
			decorators[i] = dec
		}
		arguments := make([]*ast.FunctionSignatureArgument, len(w.Args))
		for i, aw := range w.Args {
			node, err := decode(aw)
			if err != nil {
				return nil, err
			}
			arg, ok := node.(*ast.FunctionSignatureArgument)
			if !ok {
				return nil, fmt.Errorf("signature argument %d: unexpected kind %s", i, aw.Kind)
			}
			arguments[i] = arg
		}
		return ast.NewFunctionSignature(decorators, w.Name, arguments, at)

	case "ImportedIdentifier":
		return ast.NewImportedIdentifier(w.Str, at)

	case "ModuleRoot":
		commands := make([]ast.Node, len(w.Items))
		for i, iw := range w.Items {
			node, err := decode(iw)
			if err != nil {
				return nil, err
			}
			commands[i] = node
		}
		return ast.NewModuleRoot(commands, at)

	case "MacroLiteral":
		return ast.NewMacroLiteral(w.Str, at)

	case "MacroArgument":
		return ast.NewMacroArgument(w.Str, at)

	case "MacroMatchLiteral":
		node, err := decode(w.Value)
		if err != nil {
			return nil, err
		}
		lit, ok := node.(*ast.MacroLiteral)
		if !ok {
			return nil, fmt.Errorf("macro match literal: unexpected kind %s", w.Value.Kind)
		}
		return ast.NewMacroMatchLiteral(lit, at)

	case "MacroMatchArgument":
		node, err := decode(w.Ident)
		if err != nil {
			return nil, err
		}
		ident, ok := node.(*ast.MacroArgument)
		if !ok {
			return nil, fmt.Errorf("macro match argument: unexpected kind %s", w.Ident.Kind)
		}
		parser, err := ast.ParseResourceLocation(w.Parser)
		if err != nil {
			return nil, err
		}
		var props *ast.JSONValue
		if w.Props != nil {
			if props, err = ast.NewJSONValue(w.Props); err != nil {
				return nil, err
			}
		}
		return ast.NewMacroMatchArgument(ident, parser, props, at)

	case "DeferredRoot":
		if w.Cursor == nil {
			return nil, fmt.Errorf("deferred root: missing cursor")
		}
		return ast.NewDeferredRoot(ast.NewTokenCursor(*w.Cursor), at)

	case "Interpolation":
		value, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewInterpolation(w.Prefix, w.Unpack, w.Conv, value, at)

	default:
		return nil, fmt.Errorf("unknown node kind %q", w.Kind)
	}
}

func decodeExpr(w *wireNode) (ast.Expr, error) {
	if w == nil {
		return nil, fmt.Errorf("missing expression")
	}
	node, err := decode(w)
	if err != nil {
		return nil, err
	}
	expr, ok := node.(ast.Expr)
	if !ok {
		return nil, fmt.Errorf("expected expression, got %s", w.Kind)
	}
	return expr, nil
}

func decodeOptExpr(w *wireNode) (ast.Expr, error) {
	if w == nil {
		return nil, nil
	}
	return decodeExpr(w)
}

func decodeExprs(ws []*wireNode) ([]ast.Expr, error) {
	if len(ws) == 0 {
		return nil, nil
	}
	out := make([]ast.Expr, len(ws))
	for i, w := range ws {
		expr, err := decodeExpr(w)
		if err != nil {
			return nil, err
		}
		out[i] = expr
	}
	return out, nil
}

func decodeTarget(w *wireNode) (ast.Target, error) {
	if w == nil {
		return nil, fmt.Errorf("missing target")
	}
	node, err := decode(w)
	if err != nil {
		return nil, err
	}
	target, ok := node.(ast.Target)
	if !ok {
		return nil, fmt.Errorf("expected target, got %s", w.Kind)
	}
	return target, nil
}

func decodeLookupArgs(ws []*wireNode) ([]ast.LookupArg, error) {
	if len(ws) == 0 {
		return nil, nil
	}
	out := make([]ast.LookupArg, len(ws))
	for i, w := range ws {
		node, err := decode(w)
		if err != nil {
			return nil, err
		}
		arg, ok := node.(ast.LookupArg)
		if !ok {
			return nil, fmt.Errorf("subscript argument %d: unexpected kind %s", i, w.Kind)
		}
		out[i] = arg
	}
	return out, nil
}

func decodeCallArgs(ws []*wireNode) ([]ast.CallArg, error) {
	if len(ws) == 0 {
		return nil, nil
	}
	out := make([]ast.CallArg, len(ws))
	for i, w := range ws {
		node, err := decode(w)
		if err != nil {
			return nil, err
		}
		arg, ok := node.(ast.CallArg)
		if !ok {
			return nil, fmt.Errorf("call argument %d: unexpected kind %s", i, w.Kind)
		}
		out[i] = arg
	}
	return out, nil
}

func decodePayload(p *wirePayload) (any, error) {
	if p == nil {
		return nil, fmt.Errorf("value: missing payload")
	}
	switch p.Kind {
	case "nil":
		return nil, nil
	case "bool":
		return p.Bool, nil
	case "int":
		return p.Int, nil
	case "float":
		return p.Float, nil
	case "str":
		return p.Str, nil
	default:
		return nil, fmt.Errorf("value: unknown payload kind %q", p.Kind)
	}
}
