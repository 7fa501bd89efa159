package astwire

import (
	"fmt"

	"github.com/quill-lang/quill/ast"
)

func encode(node ast.Node) (*wireNode, error) {
	if node == nil {
		return nil, fmt.Errorf("nil node")
	}
	w := &wireNode{Kind: ast.Kind(node), Span: node.Span()}

	switch n := node.(type) {
	case *ast.ExprBinary:
		w.Op = n.Operator()
		var err error
		if w.Left, err = encode(n.Left()); err != nil {
			return nil, err
		}
		if w.Right, err = encode(n.Right()); err != nil {
			return nil, err
		}

	case *ast.ExprUnary:
		w.Op = n.Operator()
		var err error
		if w.Value, err = encode(n.Value()); err != nil {
			return nil, err
		}

	case *ast.Value:
		pay, err := encodePayload(n.Value())
		if err != nil {
			return nil, err
		}
		w.Pay = pay

	case *ast.Identifier:
		w.Str = n.Value()

	case *ast.FormatString:
		w.Str = n.Fmt()
		var err error
		if w.Items, err = encodeSeq(n.ChildNodes()); err != nil {
			return nil, err
		}

	case *ast.Tuple, *ast.List, *ast.Dict, *ast.TargetUnpack, *ast.ModuleRoot:
		var err error
		if w.Items, err = encodeSeq(node.ChildNodes()); err != nil {
			return nil, err
		}

	case *ast.DictItem:
		var err error
		if w.Key, err = encode(n.Key()); err != nil {
			return nil, err
		}
		if w.Value, err = encode(n.Value()); err != nil {
			return nil, err
		}

	case *ast.Slice:
		var err error
		if w.Start, err = encodeOpt(n.Start()); err != nil {
			return nil, err
		}
		if w.Stop, err = encodeOpt(n.Stop()); err != nil {
			return nil, err
		}
		if w.Step, err = encodeOpt(n.Step()); err != nil {
			return nil, err
		}

	case *ast.Unpack:
		w.Op = n.Type()
		var err error
		if w.Value, err = encode(n.Value()); err != nil {
			return nil, err
		}

	case *ast.Keyword:
		w.Name = n.Name()
		var err error
		if w.Value, err = encode(n.Value()); err != nil {
			return nil, err
		}

	case *ast.Attribute:
		w.Name = n.Name()
		var err error
		if w.Value, err = encode(n.Value()); err != nil {
			return nil, err
		}

	case *ast.Lookup:
		var err error
		if w.Value, err = encode(n.Value()); err != nil {
			return nil, err
		}
		if w.Args, err = encodeChildren(n.Arguments()); err != nil {
			return nil, err
		}

	case *ast.Call:
		var err error
		if w.Value, err = encode(n.Value()); err != nil {
			return nil, err
		}
		if w.Args, err = encodeChildren(n.Arguments()); err != nil {
			return nil, err
		}

	case *ast.TargetIdentifier:
		w.Str = n.Value()
		w.Rebind = n.Rebind()

	case *ast.TargetAttribute:
		w.Name = n.Name()
		var err error
		if w.Value, err = encode(n.Value()); err != nil {
			return nil, err
		}

	case *ast.TargetItem:
		var err error
		if w.Value, err = encode(n.Value()); err != nil {
			return nil, err
		}
		if w.Args, err = encodeChildren(n.Arguments()); err != nil {
			return nil, err
		}

	case *ast.Assignment:
		w.Op = n.Operator()
		var err error
		if w.Target, err = encode(n.Target()); err != nil {
			return nil, err
		}
		if w.Value, err = encode(n.Value()); err != nil {
			return nil, err
		}

	case *ast.Decorator:
		var err error
		if w.Value, err = encode(n.Expression()); err != nil {
			return nil, err
		}

	case *ast.FunctionSignatureArgument:
		w.Name = n.Name()
		var err error
		if w.Value, err = encodeOpt(n.Default()); err != nil {
			return nil, err
		}

	case *ast.FunctionSignature:
		w.Name = n.Name()
		var err error
		if w.Items, err = encodeChildren(n.Decorators()); err != nil {
			return nil, err
		}
		if w.Args, err = encodeChildren(n.Arguments()); err != nil {
			return nil, err
		}

	case *ast.ImportedIdentifier:
		w.Str = n.Value()

	case *ast.MacroLiteral:
		w.Str = n.Value()

	case *ast.MacroArgument:
		w.Str = n.Value()

	case *ast.MacroMatchLiteral:
		var err error
		if w.Value, err = encode(n.Match()); err != nil {
			return nil, err
		}

	case *ast.MacroMatchArgument:
		var err error
		if w.Ident, err = encode(n.MatchIdentifier()); err != nil {
			return nil, err
		}
		w.Parser = n.MatchArgumentParser().String()
		if props := n.MatchArgumentProperties(); props != nil {
			w.Props = props.Raw()
		}

	case *ast.DeferredRoot:
		pos := n.Stream().Pos()
		w.Cursor = &pos

	case *ast.Interpolation:
		if prefix, ok := n.Prefix(); ok {
			w.Prefix = &prefix
		}
		if unpack, ok := n.Unpack(); ok {
			w.Unpack = &unpack
		}
		w.Conv = n.Converter()
		var err error
		if w.Value, err = encode(n.Value()); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unsupported node kind %s", ast.Kind(node))
	}
	return w, nil
}

func encodeOpt(e ast.Expr) (*wireNode, error) {
	if e == nil {
		return nil, nil
	}
	return encode(e)
}

func encodeSeq(nodes []ast.Node) ([]*wireNode, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	out := make([]*wireNode, len(nodes))
	for i, n := range nodes {
		w, err := encode(n)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func encodeChildren[T ast.Node](c ast.Children[T]) ([]*wireNode, error) {
	if c.Len() == 0 {
		return nil, nil
	}
	out := make([]*wireNode, c.Len())
	for i := 0; i < c.Len(); i++ {
		w, err := encode(c.At(i))
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func encodePayload(v any) (*wirePayload, error) {
	switch p := v.(type) {
	case nil:
		return &wirePayload{Kind: "nil"}, nil
	case bool:
		return &wirePayload{Kind: "bool", Bool: p}, nil
	case int64:
		return &wirePayload{Kind: "int", Int: p}, nil
	case float64:
		return &wirePayload{Kind: "float", Float: p}, nil
	case string:
		return &wirePayload{Kind: "str", Str: p}, nil
	default:
		return nil, fmt.Errorf("unsupported literal payload type %T", v)
	}
}
