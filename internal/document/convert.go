package document

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// converter turns html.Node trees into the node model, dropping node types
// the model has no shape for (doctype, error and raw nodes).
type converter struct {
	dropped int
}

func (c *converter) forest(nodes []*html.Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		out = c.appendNode(out, n)
	}
	return out
}

func (c *converter) appendNode(out []Node, n *html.Node) []Node {
	switch n.Type {
	case html.ElementNode:
		var children []Node
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			children = c.appendNode(children, ch)
		}
		return append(out, &Element{tag: n.Data, attrs: AttributesFromPairs(n.Attr), children: children})
	case html.TextNode:
		return append(out, &Text{value: n.Data})
	case html.CommentNode:
		return append(out, &Comment{text: n.Data})
	case html.DocumentNode:
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			out = c.appendNode(out, ch)
		}
		return out
	default:
		c.dropped++
		return out
	}
}

// htmlRoot builds a fresh html.Node tree for nodes under a synthetic document
// node, so top-level nodes are matchable as descendants.
func htmlRoot(nodes []Node) *html.Node {
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(toHTML(n))
	}
	return root
}

func toHTML(n Node) *html.Node {
	switch v := n.(type) {
	case *Element:
		if v == nil {
			break
		}
		hn := &html.Node{
			Type:     html.ElementNode,
			Data:     v.tag,
			DataAtom: atom.Lookup([]byte(v.tag)),
			Attr:     v.attrs.Pairs(),
		}
		for _, ch := range v.children {
			hn.AppendChild(toHTML(ch))
		}
		return hn
	case *Comment:
		if v != nil {
			return &html.Node{Type: html.CommentNode, Data: v.text}
		}
	case *Text:
		if v != nil {
			return &html.Node{Type: html.TextNode, Data: v.value}
		}
	}
	panic(&UnsupportedNodeError{Node: n})
}
