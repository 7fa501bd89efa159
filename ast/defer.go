package ast

import "sync/atomic"

// ---------------------------------------------------------------------------
// Deferred parsing and interpolation nodes
// ---------------------------------------------------------------------------

// TokenCursor marks where a deferred region of unconsumed input begins.
// The position itself is immutable; the cursor's only state is a
// consume-once guard, because resuming hands the region to exactly one
// parser exactly once. Callers that genuinely need to re-parse the region
// build a fresh cursor from the same span.
type TokenCursor struct {
	span     Span
	consumed atomic.Bool
}

// NewTokenCursor creates a cursor positioned at the start of an
// unconsumed input region.
func NewTokenCursor(span Span) *TokenCursor {
	return &TokenCursor{span: span}
}

// Pos returns the region the cursor points at without consuming it.
func (c *TokenCursor) Pos() Span { return c.span }

// Resume yields the deferred region for parsing. The first call succeeds;
// every later call fails with ErrCursorConsumed.
func (c *TokenCursor) Resume() (Span, error) {
	if !c.consumed.CompareAndSwap(false, true) {
		return Span{}, ErrCursorConsumed
	}
	return c.span, nil
}

// Consumed reports whether the cursor has already been resumed.
func (c *TokenCursor) Consumed() bool { return c.consumed.Load() }

// DeferredRoot represents a region of input whose parsing is postponed.
// It holds a cursor instead of a parsed subtree; resolving it hands the
// cursor to the parser and replaces this node with the produced subtree.
type DeferredRoot struct {
	base
	stream *TokenCursor
}

// NewDeferredRoot constructs a deferred-parse placeholder node.
func NewDeferredRoot(stream *TokenCursor, opts ...Option) (*DeferredRoot, error) {
	if stream == nil {
		return nil, missing("DeferredRoot", "stream")
	}
	n := &DeferredRoot{stream: stream}
	n.apply(opts)
	return n, nil
}

func (n *DeferredRoot) Stream() *TokenCursor { return n.stream }
func (n *DeferredRoot) ChildNodes() []Node   { return nil }

// Interpolation splices a script-language value into host-language output
// text. Converter selects the rendering rule applied to the evaluated
// value; Unpack spreads the value across multiple host tokens; Prefix is
// literal text prepended at the splice point.
type Interpolation struct {
	base
	prefix    string
	hasPrefix bool
	unpack    string
	hasUnpack bool
	converter string
	value     Expr
}

// NewInterpolation constructs an interpolation node. Prefix and unpack
// may be nil for the plain splice form.
func NewInterpolation(prefix, unpack *string, converter string, value Expr, opts ...Option) (*Interpolation, error) {
	if converter == "" {
		return nil, missing("Interpolation", "converter")
	}
	if value == nil {
		return nil, missing("Interpolation", "value")
	}
	if unpack != nil && *unpack != UnpackSingle && *unpack != UnpackDouble {
		return nil, shapeErr("Interpolation", "invalid unpack %q", *unpack)
	}
	n := &Interpolation{converter: converter, value: value}
	if prefix != nil {
		n.prefix, n.hasPrefix = *prefix, true
	}
	if unpack != nil {
		n.unpack, n.hasUnpack = *unpack, true
	}
	n.apply(opts)
	return n, nil
}

// Prefix returns the literal prefix and whether one was supplied.
func (n *Interpolation) Prefix() (string, bool) { return n.prefix, n.hasPrefix }

// Unpack returns the unpack form and whether one was supplied.
func (n *Interpolation) Unpack() (string, bool) { return n.unpack, n.hasUnpack }

func (n *Interpolation) Converter() string  { return n.converter }
func (n *Interpolation) Value() Expr        { return n.value }
func (n *Interpolation) ChildNodes() []Node { return []Node{n.value} }
