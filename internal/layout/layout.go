package layout

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// Doc is a layout document built with the constructors in this package
type Doc interface {
	isDoc()
}

type (
	text      string
	line      struct{}
	hardLine  struct{}
	flexBreak struct{}
	concat    []Doc
	nest      struct {
		indent int
		doc    Doc
	}
	group struct {
		doc Doc
	}
)

func (text) isDoc()      {}
func (line) isDoc()      {}
func (hardLine) isDoc()  {}
func (flexBreak) isDoc() {}
func (concat) isDoc()    {}
func (nest) isDoc()      {}
func (group) isDoc()     {}

// Empty renders nothing
var Empty Doc = concat(nil)

// Text returns a literal text doc
func Text(s string) Doc {
	return text(s)
}

// Line returns a break that is a space when its group is flat
func Line() Doc {
	return line{}
}

// HardLine returns a break that always starts a new line
func HardLine() Doc {
	return hardLine{}
}

// FlexBreak returns a break that is a space if the following segment fits
func FlexBreak() Doc {
	return flexBreak{}
}

// Nest indents every line started inside d by indent more columns
func Nest(indent int, d Doc) Doc {
	return nest{indent: indent, doc: d}
}

// Concat joins docs without separators
func Concat(docs ...Doc) Doc {
	return concat(docs)
}

// Group lays d out flat when it fits in the remaining width
func Group(d Doc) Doc {
	return group{doc: d}
}

// Join places sep between consecutive docs
func Join(docs []Doc, sep Doc) Doc {
	if len(docs) == 0 {
		return Empty
	}
	out := make(concat, 0, 2*len(docs)-1)
	for i, d := range docs {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, d)
	}
	return out
}

// Fill joins docs with flexible breaks, packing as many per line as fit
func Fill(docs []Doc) Doc {
	return Join(docs, FlexBreak())
}

type mode int

const (
	modeBreak mode = iota
	modeFlat
)

type cmd struct {
	indent int
	mode   mode
	doc    Doc
}

// String renders d into a string for the given line width
func String(d Doc, width int) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = Render(&sb, d, width)
	return sb.String()
}

// Render writes d to w, breaking lines to stay within width where possible
func Render(w io.Writer, d Doc, width int) error {
	p := &printer{w: bufio.NewWriter(w), width: width, pending: -1}
	p.run(d)
	if p.err != nil {
		return p.err
	}
	return p.w.Flush()
}

type printer struct {
	w     *bufio.Writer
	width int
	col   int
	// indentation owed before the next text; -1 when none
	pending int
	err     error
}

func (p *printer) run(d Doc) {
	stack := []cmd{{indent: 0, mode: modeBreak, doc: d}}
	for len(stack) > 0 && p.err == nil {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := c.doc.(type) {
		case text:
			p.text(string(v))
		case concat:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, cmd{indent: c.indent, mode: c.mode, doc: v[i]})
			}
		case nest:
			stack = append(stack, cmd{indent: c.indent + v.indent, mode: c.mode, doc: v.doc})
		case group:
			m := modeFlat
			if c.mode == modeBreak && !fits(p.width-p.col, []cmd{{indent: c.indent, mode: modeFlat, doc: v.doc}}, stack) {
				m = modeBreak
			}
			stack = append(stack, cmd{indent: c.indent, mode: m, doc: v.doc})
		case line:
			if c.mode == modeFlat {
				p.text(" ")
			} else {
				p.newline(c.indent)
			}
		case hardLine:
			p.newline(c.indent)
		case flexBreak:
			if fits(p.width-p.col-1, nil, stack) {
				p.text(" ")
			} else {
				p.newline(c.indent)
			}
		}
	}
}

func (p *printer) newline(indent int) {
	p.write("\n")
	p.col = 0
	p.pending = indent
}

func (p *printer) text(s string) {
	if s == "" {
		return
	}
	if p.pending > 0 {
		p.write(strings.Repeat(" ", p.pending))
		p.col = p.pending
	}
	p.pending = -1
	p.write(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		p.col = utf8.RuneCountInString(s[i+1:])
	} else {
		p.col += utf8.RuneCountInString(s)
	}
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = p.w.WriteString(s)
}

// fits reports whether the docs in next, followed by the pending stack rest,
// reach a line break before exceeding rem columns.
func fits(rem int, next []cmd, rest []cmd) bool {
	restIdx := len(rest)
	for rem >= 0 {
		if len(next) == 0 {
			if restIdx == 0 {
				return true
			}
			restIdx--
			next = append(next, rest[restIdx])
			continue
		}
		c := next[len(next)-1]
		next = next[:len(next)-1]

		switch v := c.doc.(type) {
		case text:
			s := string(v)
			if i := strings.IndexByte(s, '\n'); i >= 0 {
				return utf8.RuneCountInString(s[:i]) <= rem
			}
			rem -= utf8.RuneCountInString(s)
		case concat:
			for i := len(v) - 1; i >= 0; i-- {
				next = append(next, cmd{indent: c.indent, mode: c.mode, doc: v[i]})
			}
		case nest:
			next = append(next, cmd{indent: c.indent + v.indent, mode: c.mode, doc: v.doc})
		case group:
			next = append(next, cmd{indent: c.indent, mode: c.mode, doc: v.doc})
		case line:
			if c.mode == modeBreak {
				return true
			}
			rem--
		case hardLine, flexBreak:
			return true
		}
	}
	return false
}
