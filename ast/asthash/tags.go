package asthash

// ---------------------------------------------------------------------------
// Frozen tag bytes for the tree serialization format.
//
// IMPORTANT: These tags are FROZEN. Once assigned, a tag byte must never
// change meaning. Adding new tags is fine; changing existing ones breaks
// all previously computed content hashes.
// ---------------------------------------------------------------------------

// HashVersion is the version prefix for the serialization format.
// Bumping this invalidates all existing content hashes.
const HashVersion byte = 1

// Node type tags. Each tag uniquely identifies a node kind in the
// serialized byte stream.
const (
	TagReservedZero byte = 0x00 // version prefix / reserved

	// Expressions
	TagExprBinary   byte = 0x01
	TagExprUnary    byte = 0x02
	TagValue        byte = 0x03
	TagIdentifier   byte = 0x04
	TagFormatString byte = 0x05
	TagTuple        byte = 0x06
	TagList         byte = 0x07
	TagDictItem     byte = 0x08
	TagDict         byte = 0x09
	TagSlice        byte = 0x0A
	TagUnpack       byte = 0x0B
	TagKeyword      byte = 0x0C
	TagAttribute    byte = 0x0D
	TagLookup       byte = 0x0E
	TagCall         byte = 0x0F

	// Targets
	TagTargetIdentifier byte = 0x10
	TagTargetUnpack     byte = 0x11
	TagTargetAttribute  byte = 0x12
	TagTargetItem       byte = 0x13

	// Statements / declarations
	TagAssignment                byte = 0x14
	TagDecorator                 byte = 0x15
	TagFunctionSignatureArgument byte = 0x16
	TagFunctionSignature         byte = 0x17
	TagImportedIdentifier        byte = 0x18
	TagModuleRoot                byte = 0x19

	// Macro grammar
	TagMacroLiteral       byte = 0x1A
	TagMacroArgument      byte = 0x1B
	TagMacroMatchLiteral  byte = 0x1C
	TagMacroMatchArgument byte = 0x1D

	// Deferred parsing and interpolation
	TagDeferredRoot  byte = 0x1E
	TagInterpolation byte = 0x1F

	// Value payload kinds
	TagPayloadNil    byte = 0x20
	TagPayloadBool   byte = 0x21
	TagPayloadInt    byte = 0x22
	TagPayloadFloat  byte = 0x23
	TagPayloadString byte = 0x24
	TagPayloadOther  byte = 0x25

	// Optional-field markers
	TagAbsent  byte = 0x26
	TagPresent byte = 0x27

	// Reserved 0xFE-0xFF
)

// allTags lists every assigned tag for the uniqueness test.
var allTags = []byte{
	TagExprBinary, TagExprUnary, TagValue, TagIdentifier, TagFormatString,
	TagTuple, TagList, TagDictItem, TagDict, TagSlice, TagUnpack,
	TagKeyword, TagAttribute, TagLookup, TagCall,
	TagTargetIdentifier, TagTargetUnpack, TagTargetAttribute, TagTargetItem,
	TagAssignment, TagDecorator, TagFunctionSignatureArgument,
	TagFunctionSignature, TagImportedIdentifier, TagModuleRoot,
	TagMacroLiteral, TagMacroArgument, TagMacroMatchLiteral,
	TagMacroMatchArgument, TagDeferredRoot, TagInterpolation,
	TagPayloadNil, TagPayloadBool, TagPayloadInt, TagPayloadFloat,
	TagPayloadString, TagPayloadOther, TagAbsent, TagPresent,
}
