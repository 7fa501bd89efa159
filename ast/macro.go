package ast

import "regexp"

// ---------------------------------------------------------------------------
// Macro grammar nodes
//
// A macro-defined command declares the pattern it matches as an ordered
// sequence of MacroMatch elements: exact literal tokens and named capture
// slots handled by external argument parsers.
// ---------------------------------------------------------------------------

// IdentifierPattern is the lexical pattern for identifier-shaped tokens.
const IdentifierPattern = `[a-zA-Z_][a-zA-Z0-9_]*`

var identifierRE = regexp.MustCompile(`^` + IdentifierPattern + `$`)

// MacroMatch is the interface for macro pattern elements.
type MacroMatch interface {
	Node
	macroMatch() // marker method
}

// MacroLiteral is the literal token form used inside macro patterns.
type MacroLiteral struct {
	base
	value string
}

// NewMacroLiteral constructs a macro literal token.
func NewMacroLiteral(value string, opts ...Option) (*MacroLiteral, error) {
	if value == "" {
		return nil, missing("MacroLiteral", "value")
	}
	n := &MacroLiteral{value: value}
	n.apply(opts)
	return n, nil
}

func (n *MacroLiteral) Value() string      { return n.value }
func (n *MacroLiteral) ChildNodes() []Node { return nil }

// MacroArgument is the capture-name token form used inside macro
// patterns. Its value is constrained to the identifier pattern; a token
// that does not match cannot be represented at all.
type MacroArgument struct {
	base
	value string
}

// NewMacroArgument constructs a macro argument token.
func NewMacroArgument(value string, opts ...Option) (*MacroArgument, error) {
	if value == "" {
		return nil, missing("MacroArgument", "value")
	}
	if !identifierRE.MatchString(value) {
		return nil, shapeErr("MacroArgument", "value %q is not an identifier", value)
	}
	n := &MacroArgument{value: value}
	n.apply(opts)
	return n, nil
}

func (n *MacroArgument) Value() string      { return n.value }
func (n *MacroArgument) ChildNodes() []Node { return nil }

// MacroMatchLiteral matches one exact literal token.
type MacroMatchLiteral struct {
	macroMatchBase
	match *MacroLiteral
}

// NewMacroMatchLiteral constructs a literal pattern element.
func NewMacroMatchLiteral(match *MacroLiteral, opts ...Option) (*MacroMatchLiteral, error) {
	if match == nil {
		return nil, missing("MacroMatchLiteral", "match")
	}
	n := &MacroMatchLiteral{match: match}
	n.apply(opts)
	return n, nil
}

func (n *MacroMatchLiteral) Match() *MacroLiteral { return n.match }
func (n *MacroMatchLiteral) ChildNodes() []Node   { return []Node{n.match} }

// MacroMatchArgument captures one argument slot: the local identifier the
// captured value binds to, the external parser that consumes the slot,
// and optional structured configuration for that parser.
type MacroMatchArgument struct {
	macroMatchBase
	matchIdentifier         *MacroArgument
	matchArgumentParser     ResourceLocation
	matchArgumentProperties *JSONValue
}

// NewMacroMatchArgument constructs a capture pattern element. Properties
// may be nil.
func NewMacroMatchArgument(matchIdentifier *MacroArgument, matchArgumentParser ResourceLocation, matchArgumentProperties *JSONValue, opts ...Option) (*MacroMatchArgument, error) {
	if matchIdentifier == nil {
		return nil, missing("MacroMatchArgument", "match_identifier")
	}
	if matchArgumentParser.IsZero() {
		return nil, missing("MacroMatchArgument", "match_argument_parser")
	}
	n := &MacroMatchArgument{
		matchIdentifier:         matchIdentifier,
		matchArgumentParser:     matchArgumentParser,
		matchArgumentProperties: matchArgumentProperties,
	}
	n.apply(opts)
	return n, nil
}

func (n *MacroMatchArgument) MatchIdentifier() *MacroArgument       { return n.matchIdentifier }
func (n *MacroMatchArgument) MatchArgumentParser() ResourceLocation { return n.matchArgumentParser }
func (n *MacroMatchArgument) MatchArgumentProperties() *JSONValue   { return n.matchArgumentProperties }
func (n *MacroMatchArgument) ChildNodes() []Node {
	return []Node{n.matchIdentifier}
}
