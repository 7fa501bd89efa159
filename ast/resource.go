package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// DefaultNamespace is applied when a resource location omits the
// namespace part.
const DefaultNamespace = "quill"

var (
	namespaceRE = regexp.MustCompile(`^[a-z0-9_.-]+$`)
	pathRE      = regexp.MustCompile(`^[a-z0-9_./-]+$`)
)

// ResourceLocation names an external resource such as the argument parser
// responsible for one macro capture slot. It is written "namespace:path";
// a missing namespace defaults to DefaultNamespace.
type ResourceLocation struct {
	Namespace string
	Path      string
}

// ParseResourceLocation parses the "namespace:path" form.
func ParseResourceLocation(s string) (ResourceLocation, error) {
	namespace := DefaultNamespace
	path := s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		namespace, path = s[:i], s[i+1:]
	}
	if path == "" {
		return ResourceLocation{}, missing("ResourceLocation", "path")
	}
	if !namespaceRE.MatchString(namespace) {
		return ResourceLocation{}, shapeErr("ResourceLocation", "invalid namespace %q", namespace)
	}
	if !pathRE.MatchString(path) {
		return ResourceLocation{}, shapeErr("ResourceLocation", "invalid path %q", path)
	}
	return ResourceLocation{Namespace: namespace, Path: path}, nil
}

// IsZero reports whether the location is the unset zero value.
func (r ResourceLocation) IsZero() bool { return r.Namespace == "" && r.Path == "" }

func (r ResourceLocation) String() string {
	return fmt.Sprintf("%s:%s", r.Namespace, r.Path)
}

// JSONValue is an immutable JSON payload, such as the structured
// properties handed to an external argument parser. The text is compacted
// at construction so equality is plain string equality for equivalent
// whitespace variants.
type JSONValue struct {
	raw string
}

// NewJSONValue validates and stores a JSON document.
func NewJSONValue(raw []byte) (*JSONValue, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, shapeErr("JSONValue", "invalid JSON: %v", err)
	}
	return &JSONValue{raw: buf.String()}, nil
}

// Raw returns the compacted JSON text.
func (v *JSONValue) Raw() []byte { return []byte(v.raw) }

// Equal reports whether two payloads hold the same compacted text. A nil
// payload only equals another nil payload.
func (v *JSONValue) Equal(o *JSONValue) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.raw == o.raw
}
