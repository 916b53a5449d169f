package layout

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(ws ...string) []Doc {
	docs := make([]Doc, 0, len(ws))
	for _, w := range ws {
		docs = append(docs, Text(w))
	}
	return docs
}

func TestFill(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{name: "all on one line", width: 80, want: "aaa bbb ccc"},
		{name: "exact fit then wrap", width: 7, want: "aaa bbb\nccc"},
		{name: "one per line", width: 3, want: "aaa\nbbb\nccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := String(Fill(words("aaa", "bbb", "ccc")), tt.width)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHardLineNested(t *testing.T) {
	d := Concat(
		Text("<ul>"),
		Nest(2, Concat(HardLine(), Text("<li>"), Nest(2, Concat(HardLine(), Text("x"))), HardLine(), Text("</li>"))),
		HardLine(),
		Text("</ul>"),
	)

	// width never relaxes a hard line
	want := "<ul>\n  <li>\n    x\n  </li>\n</ul>"
	assert.Equal(t, want, String(d, 1000))
	assert.Equal(t, want, String(d, 1))
}

func TestGroup(t *testing.T) {
	d := Group(Concat(Text("f("), Nest(2, Concat(Line(), Text("arg1,"), Line(), Text("arg2"))), Line(), Text(")")))

	assert.Equal(t, "f( arg1, arg2 )", String(d, 80))
	assert.Equal(t, "f(\n  arg1,\n  arg2\n)", String(d, 10))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", String(Join(nil, Text(",")), 80))
	assert.Equal(t, "a,b", String(Join(words("a", "b"), Text(",")), 80))
}

func TestNoTrailingIndent(t *testing.T) {
	d := Nest(4, Concat(Text("a"), HardLine(), HardLine(), Text("b")))
	assert.Equal(t, "a\n\n    b", String(d, 80))
}

func TestMultilineTextColumn(t *testing.T) {
	// the column after "x\nyy" is 2, so only one more short word fits on width 5
	d := Concat(Text("x\nyy"), FlexBreak(), Text("zz"), FlexBreak(), Text("w"))
	assert.Equal(t, "x\nyy zz\nw", String(d, 5))
}

func TestRenderWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Text("hello"), 80))
	assert.Equal(t, "hello", buf.String())
}
