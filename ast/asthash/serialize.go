package asthash

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/quill-lang/quill/ast"
)

// ---------------------------------------------------------------------------
// Deterministic binary serialization of trees.
//
// Encoding conventions:
//   - First byte: HashVersion (0x01)
//   - Integers: big-endian fixed-width (int64=8B, uint32=4B)
//   - Floats: IEEE 754 big-endian 8B
//   - Strings: uint32 big-endian length + UTF-8 bytes
//   - Booleans: single byte (0/1)
//   - Optional fields: TagAbsent, or TagPresent followed by the value
//   - Child sequences: uint32 count followed by each child inline
//
// Spans and metadata are excluded, so the serialization is stable across
// reformatting and re-parsing of unchanged source.
// ---------------------------------------------------------------------------

// Serialize produces a deterministic byte serialization of a tree. The
// returned bytes are suitable for hashing with SHA-256.
func Serialize(node ast.Node) []byte {
	s := &serializer{buf: make([]byte, 0, 256)}
	s.writeByte(HashVersion)
	s.serializeNode(node)
	return s.buf
}

type serializer struct {
	buf []byte
}

func (s *serializer) writeByte(b byte) {
	s.buf = append(s.buf, b)
}

func (s *serializer) writeBool(v bool) {
	if v {
		s.writeByte(1)
	} else {
		s.writeByte(0)
	}
}

func (s *serializer) writeUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	s.buf = append(s.buf, b[:]...)
}

func (s *serializer) writeInt64(v int64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	s.buf = append(s.buf, b[:]...)
}

func (s *serializer) writeFloat64(v float64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(v))
	s.buf = append(s.buf, b[:]...)
}

func (s *serializer) writeString(v string) {
	s.writeUint32(uint32(len(v)))
	s.buf = append(s.buf, v...)
}

func (s *serializer) writeSeq(nodes []ast.Node) {
	s.writeUint32(uint32(len(nodes)))
	for _, n := range nodes {
		s.serializeNode(n)
	}
}

func (s *serializer) writeOptExpr(e ast.Expr) {
	if e == nil {
		s.writeByte(TagAbsent)
		return
	}
	s.writeByte(TagPresent)
	s.serializeNode(e)
}

func (s *serializer) writeOptString(v string, present bool) {
	if !present {
		s.writeByte(TagAbsent)
		return
	}
	s.writeByte(TagPresent)
	s.writeString(v)
}

func (s *serializer) serializeNode(node ast.Node) {
	switch n := node.(type) {
	case *ast.ExprBinary:
		s.writeByte(TagExprBinary)
		s.writeString(n.Operator())
		s.serializeNode(n.Left())
		s.serializeNode(n.Right())

	case *ast.ExprUnary:
		s.writeByte(TagExprUnary)
		s.writeString(n.Operator())
		s.serializeNode(n.Value())

	case *ast.Value:
		s.writeByte(TagValue)
		s.writePayload(n.Value())

	case *ast.Identifier:
		s.writeByte(TagIdentifier)
		s.writeString(n.Value())

	case *ast.FormatString:
		s.writeByte(TagFormatString)
		s.writeString(n.Fmt())
		s.writeSeq(n.ChildNodes())

	case *ast.Tuple:
		s.writeByte(TagTuple)
		s.writeSeq(n.ChildNodes())

	case *ast.List:
		s.writeByte(TagList)
		s.writeSeq(n.ChildNodes())

	case *ast.DictItem:
		s.writeByte(TagDictItem)
		s.serializeNode(n.Key())
		s.serializeNode(n.Value())

	case *ast.Dict:
		s.writeByte(TagDict)
		s.writeSeq(n.ChildNodes())

	case *ast.Slice:
		s.writeByte(TagSlice)
		s.writeOptExpr(n.Start())
		s.writeOptExpr(n.Stop())
		s.writeOptExpr(n.Step())

	case *ast.Unpack:
		s.writeByte(TagUnpack)
		s.writeString(n.Type())
		s.serializeNode(n.Value())

	case *ast.Keyword:
		s.writeByte(TagKeyword)
		s.writeString(n.Name())
		s.serializeNode(n.Value())

	case *ast.Attribute:
		s.writeByte(TagAttribute)
		s.writeString(n.Name())
		s.serializeNode(n.Value())

	case *ast.Lookup:
		s.writeByte(TagLookup)
		s.serializeNode(n.Value())
		s.writeSeq(lookupArgNodes(n.Arguments()))

	case *ast.Call:
		s.writeByte(TagCall)
		s.serializeNode(n.Value())
		s.writeSeq(callArgNodes(n.Arguments()))

	case *ast.TargetIdentifier:
		s.writeByte(TagTargetIdentifier)
		s.writeString(n.Value())
		s.writeBool(n.Rebind())

	case *ast.TargetUnpack:
		s.writeByte(TagTargetUnpack)
		s.writeSeq(n.ChildNodes())

	case *ast.TargetAttribute:
		s.writeByte(TagTargetAttribute)
		s.writeString(n.Name())
		s.serializeNode(n.Value())

	case *ast.TargetItem:
		s.writeByte(TagTargetItem)
		s.serializeNode(n.Value())
		s.writeSeq(lookupArgNodes(n.Arguments()))

	case *ast.Assignment:
		s.writeByte(TagAssignment)
		s.writeString(n.Operator())
		s.serializeNode(n.Target())
		s.serializeNode(n.Value())

	case *ast.Decorator:
		s.writeByte(TagDecorator)
		s.serializeNode(n.Expression())

	case *ast.FunctionSignatureArgument:
		s.writeByte(TagFunctionSignatureArgument)
		s.writeString(n.Name())
		s.writeOptExpr(n.Default())

	case *ast.FunctionSignature:
		s.writeByte(TagFunctionSignature)
		decorators := n.Decorators()
		s.writeUint32(uint32(decorators.Len()))
		for i := 0; i < decorators.Len(); i++ {
			s.serializeNode(decorators.At(i))
		}
		s.writeString(n.Name())
		arguments := n.Arguments()
		s.writeUint32(uint32(arguments.Len()))
		for i := 0; i < arguments.Len(); i++ {
			s.serializeNode(arguments.At(i))
		}

	case *ast.ImportedIdentifier:
		s.writeByte(TagImportedIdentifier)
		s.writeString(n.Value())

	case *ast.ModuleRoot:
		s.writeByte(TagModuleRoot)
		s.writeSeq(n.ChildNodes())

	case *ast.MacroLiteral:
		s.writeByte(TagMacroLiteral)
		s.writeString(n.Value())

	case *ast.MacroArgument:
		s.writeByte(TagMacroArgument)
		s.writeString(n.Value())

	case *ast.MacroMatchLiteral:
		s.writeByte(TagMacroMatchLiteral)
		s.serializeNode(n.Match())

	case *ast.MacroMatchArgument:
		s.writeByte(TagMacroMatchArgument)
		s.serializeNode(n.MatchIdentifier())
		s.writeString(n.MatchArgumentParser().String())
		if props := n.MatchArgumentProperties(); props != nil {
			s.writeByte(TagPresent)
			s.writeString(string(props.Raw()))
		} else {
			s.writeByte(TagAbsent)
		}

	case *ast.DeferredRoot:
		s.writeByte(TagDeferredRoot)
		pos := n.Stream().Pos()
		s.writeInt64(int64(pos.Start.Offset))
		s.writeInt64(int64(pos.End.Offset))

	case *ast.Interpolation:
		s.writeByte(TagInterpolation)
		prefix, hasPrefix := n.Prefix()
		s.writeOptString(prefix, hasPrefix)
		unpack, hasUnpack := n.Unpack()
		s.writeOptString(unpack, hasUnpack)
		s.writeString(n.Converter())
		s.serializeNode(n.Value())

	default:
		panic(fmt.Sprintf("asthash: unhandled node kind %s", ast.Kind(node)))
	}
}

// writePayload serializes a literal payload with a kind tag so values of
// different dynamic types never collide.
func (s *serializer) writePayload(v any) {
	switch p := v.(type) {
	case nil:
		s.writeByte(TagPayloadNil)
	case bool:
		s.writeByte(TagPayloadBool)
		s.writeBool(p)
	case int64:
		s.writeByte(TagPayloadInt)
		s.writeInt64(p)
	case float64:
		s.writeByte(TagPayloadFloat)
		s.writeFloat64(p)
	case string:
		s.writeByte(TagPayloadString)
		s.writeString(p)
	default:
		s.writeByte(TagPayloadOther)
		s.writeString(fmt.Sprintf("%T:%v", p, p))
	}
}

func lookupArgNodes(c ast.Children[ast.LookupArg]) []ast.Node {
	out := make([]ast.Node, c.Len())
	for i := 0; i < c.Len(); i++ {
		out[i] = c.At(i)
	}
	return out
}

func callArgNodes(c ast.Children[ast.CallArg]) []ast.Node {
	out := make([]ast.Node, c.Len())
	for i := 0; i < c.Len(); i++ {
		out[i] = c.At(i)
	}
	return out
}
