package document

import (
	"io"

	"github.com/GriffinCanCode/htmldoc/internal/layout"
)

const (
	// DefaultWidth is the line width Pretty lays out for
	DefaultWidth = 80

	indent      = 2
	openMarker  = "~HTML["
	closeMarker = "]"
)

// Pretty renders the tree for inspection, bracketed by ~HTML[ and ].
// Children of an element go one per line; top-level nodes share a line
// while they fit. Attribute values have double quotes escaped as &quot;.
//
// Pretty panics with *UnsupportedNodeError on a node that is not a non-nil
// *Element, *Comment or *Text.
func (d *Document) Pretty() string {
	return layout.String(d.layout(), DefaultWidth)
}

// WritePretty writes the Pretty form to w laid out for width columns.
func (d *Document) WritePretty(w io.Writer, width int) error {
	return layout.Render(w, d.layout(), width)
}

func (d *Document) String() string {
	return d.Pretty()
}

func (d *Document) layout() layout.Doc {
	roots := make([]layout.Doc, 0, len(d.nodes))
	for _, n := range d.nodes {
		roots = append(roots, nodeLayout(n))
	}
	return layout.Concat(layout.Text(openMarker), layout.Fill(roots), layout.Text(closeMarker))
}

func nodeLayout(n Node) layout.Doc {
	switch v := n.(type) {
	case *Element:
		if v != nil {
			return elementLayout(v)
		}
	case *Comment:
		if v != nil {
			return layout.Text("<!--" + v.text + "-->")
		}
	case *Text:
		if v != nil {
			return layout.Text(v.value)
		}
	}
	panic(&UnsupportedNodeError{Node: n})
}

func elementLayout(e *Element) layout.Doc {
	open := "<" + e.tag
	if e.attrs.Len() > 0 {
		open += " " + e.attrs.String()
	}
	open += ">"
	closing := layout.Text("</" + e.tag + ">")

	if len(e.children) == 0 {
		return layout.Concat(layout.Text(open), closing)
	}

	body := make([]layout.Doc, 0, 2*len(e.children))
	for _, ch := range e.children {
		body = append(body, layout.HardLine(), nodeLayout(ch))
	}
	return layout.Concat(
		layout.Text(open),
		layout.Nest(indent, layout.Concat(body...)),
		layout.HardLine(),
		closing,
	)
}
