package document

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is wrapped by every parse failure.
	ErrParse = errors.New("parse error")

	// ErrNotFound reports a lookup that matched no nodes.
	ErrNotFound = errors.New("no matching nodes")

	// ErrInvalidSelector reports a CSS selector or XPath expression the engine rejected.
	ErrInvalidSelector = errors.New("invalid selector")
)

// UnsupportedNodeError is the panic value raised when a node outside the
// Element, Comment and Text shapes reaches the pretty-printer.
type UnsupportedNodeError struct {
	Node Node
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("unsupported node shape %T", e.Node)
}
