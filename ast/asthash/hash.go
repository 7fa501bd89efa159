// Package asthash computes content hashes of quill trees.
//
// The hash is a SHA-256 digest over a deterministic serialization of the
// tree's syntactic attributes. Spans and metadata are excluded, so two
// parses of unchanged source produce the same digest regardless of
// surrounding whitespace shifts. Digests key the compiled-tree cache.
package asthash

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/quill-lang/quill/ast"
)

// Sum computes the SHA-256 content hash of a tree.
func Sum(node ast.Node) [32]byte {
	return sha256.Sum256(Serialize(node))
}

// HexSum returns the content hash as a lowercase hex string.
func HexSum(node ast.Node) string {
	sum := Sum(node)
	return hex.EncodeToString(sum[:])
}
