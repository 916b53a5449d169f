package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// Document is an immutable forest of top-level nodes.
type Document struct {
	nodes []Node
}

// New wraps nodes in a document. The slice is copied.
func New(nodes ...Node) *Document {
	return &Document{nodes: append([]Node(nil), nodes...)}
}

// Nodes returns a copy of the top-level nodes
func (d *Document) Nodes() []Node {
	return append([]Node(nil), d.nodes...)
}

// Len returns the number of top-level nodes
func (d *Document) Len() int {
	return len(d.nodes)
}

// Find returns a new document holding every node matching the CSS selector,
// in document order. It returns ErrNotFound when nothing matches and wraps
// ErrInvalidSelector when the selector does not compile.
//
// Top-level nodes are candidates too, so running the same selector again on
// a result whose roots matched returns those roots again.
func (d *Document) Find(selector string) (*Document, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, selector, err)
	}

	matched := goquery.NewDocumentFromNode(htmlRoot(d.nodes)).FindMatcher(sel)
	if matched.Length() == 0 {
		return nil, ErrNotFound
	}
	return fromMatches(matched.Nodes), nil
}

// Lookup is Find with a comma-ok result; an invalid selector reports false.
func (d *Document) Lookup(selector string) (*Document, bool) {
	found, err := d.Find(selector)
	if err != nil {
		return nil, false
	}
	return found, true
}

// FindXPath returns a new document holding the nodes selected by an XPath
// expression. Errors follow Find; an expression that evaluates to a number,
// string or boolean rather than a node-set wraps ErrInvalidSelector.
//
// A selected attribute comes back as a *Text holding its value, so //a/@href
// yields one text node per link.
func (d *Document) FindXPath(expr string) (*Document, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, expr, err)
	}

	it, ok := compiled.Evaluate(htmlquery.CreateXPathNavigator(htmlRoot(d.nodes))).(*xpath.NodeIterator)
	if !ok {
		return nil, fmt.Errorf("%w: %q does not select nodes", ErrInvalidSelector, expr)
	}

	var (
		c     converter
		found []Node
	)
	for it.MoveNext() {
		nav := it.Current().(*htmlquery.NodeNavigator)
		if nav.NodeType() == xpath.AttributeNode {
			found = append(found, &Text{value: nav.Value()})
			continue
		}
		found = c.appendNode(found, nav.Current())
	}
	if len(found) == 0 {
		return nil, ErrNotFound
	}
	return &Document{nodes: found}, nil
}

// Text returns the concatenated text content of all nodes in order.
func (d *Document) Text() string {
	return goquery.NewDocumentFromNode(htmlRoot(d.nodes)).Text()
}

// HTML renders the forest back to markup.
func (d *Document) HTML() (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, htmlRoot(d.nodes)); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return sb.String(), nil
}

// IsNotFound reports whether err is a lookup miss
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func fromMatches(nodes []*html.Node) *Document {
	var c converter
	return &Document{nodes: c.forest(nodes)}
}
