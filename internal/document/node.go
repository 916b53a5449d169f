package document

// Node is one of *Element, *Comment or *Text.
type Node interface {
	node()
}

// Element is an HTML element with ordered, key-unique attributes.
type Element struct {
	tag      string
	attrs    Attributes
	children []Node
}

// Comment is an HTML comment.
type Comment struct {
	text string
}

// Text is a run of character data.
type Text struct {
	value string
}

func (*Element) node() {}
func (*Comment) node() {}
func (*Text) node()    {}

// NewElement builds an element. The children slice is copied.
func NewElement(tag string, attrs Attributes, children ...Node) *Element {
	return &Element{tag: tag, attrs: attrs, children: append([]Node(nil), children...)}
}

// NewComment builds a comment node.
func NewComment(text string) *Comment {
	return &Comment{text: text}
}

// NewText builds a text node.
func NewText(value string) *Text {
	return &Text{value: value}
}

// Tag returns the element name
func (e *Element) Tag() string { return e.tag }

// Attrs returns the element attributes
func (e *Element) Attrs() Attributes { return e.attrs }

// Children returns a copy of the child list
func (e *Element) Children() []Node {
	return append([]Node(nil), e.children...)
}

// Text returns the comment body
func (c *Comment) Text() string { return c.text }

// Value returns the character data
func (t *Text) Value() string { return t.value }
