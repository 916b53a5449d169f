package document

import (
	"github.com/bytedance/sonic"
)

// exportNode is the structured form used by the JSON and YAML encodings.
type exportNode struct {
	Type     string       `json:"type" yaml:"type"`
	Tag      string       `json:"tag,omitempty" yaml:"tag,omitempty"`
	Attrs    []exportAttr `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Children []exportNode `json:"children,omitempty" yaml:"children,omitempty"`
	Text     string       `json:"text,omitempty" yaml:"text,omitempty"`
}

type exportAttr struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// MarshalJSON encodes the forest as a list of typed nodes; attributes keep
// their order as a list of name/value pairs.
func (d *Document) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(d.export())
}

// MarshalYAML implements the goccy/go-yaml InterfaceMarshaler.
func (d *Document) MarshalYAML() (interface{}, error) {
	return d.export(), nil
}

func (d *Document) export() []exportNode {
	return exportForest(d.nodes)
}

func exportForest(nodes []Node) []exportNode {
	out := make([]exportNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, exportOf(n))
	}
	return out
}

func exportOf(n Node) exportNode {
	switch v := n.(type) {
	case *Element:
		if v == nil {
			break
		}
		en := exportNode{Type: "element", Tag: v.tag, Children: exportForest(v.children)}
		for _, a := range v.attrs.All() {
			en.Attrs = append(en.Attrs, exportAttr{Name: a.Name, Value: a.Value})
		}
		if len(en.Children) == 0 {
			en.Children = nil
		}
		return en
	case *Comment:
		if v != nil {
			return exportNode{Type: "comment", Text: v.text}
		}
	case *Text:
		if v != nil {
			return exportNode{Type: "text", Text: v.value}
		}
	}
	panic(&UnsupportedNodeError{Node: n})
}
