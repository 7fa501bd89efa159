package ast

import (
	"errors"
	"fmt"
)

// ErrCursorConsumed indicates a deferred-parse cursor was resumed more
// than once.
var ErrCursorConsumed = errors.New("ast: token cursor already consumed")

// MissingAttributeError reports a node constructed without one of its
// required attributes. Construction never yields a partially built node.
type MissingAttributeError struct {
	NodeType  string
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("ast: %s missing required attribute %s", e.NodeType, e.Attribute)
}

// ShapeError reports an attribute value that cannot be represented by the
// node being constructed, such as a non-identifier macro argument token.
type ShapeError struct {
	NodeType string
	Detail   string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("ast: %s: %s", e.NodeType, e.Detail)
}

func missing(nodeType, attribute string) error {
	return &MissingAttributeError{NodeType: nodeType, Attribute: attribute}
}

func shapeErr(nodeType, format string, args ...any) error {
	return &ShapeError{NodeType: nodeType, Detail: fmt.Sprintf(format, args...)}
}
