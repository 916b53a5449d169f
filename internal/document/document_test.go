package document

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const greeting = "<p>Hello, <em>world</em>!</p>"

func TestFindFound(t *testing.T) {
	doc := MustParse(greeting)

	found, err := doc.Find("em")
	require.NoError(t, err)
	require.Equal(t, 1, found.Len())

	em, ok := found.Nodes()[0].(*Element)
	require.True(t, ok)
	assert.Equal(t, "em", em.Tag())
	require.Len(t, em.Children(), 1)

	text, ok := em.Children()[0].(*Text)
	require.True(t, ok)
	assert.Equal(t, "world", text.Value())
}

func TestFindNotFound(t *testing.T) {
	doc := MustParse(greeting)

	found, err := doc.Find("span")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFound(err))
	assert.Nil(t, found)

	_, ok := doc.Lookup("span")
	assert.False(t, ok)
}

func TestFindInvalidSelector(t *testing.T) {
	doc := MustParse(greeting)

	_, err := doc.Find("[")
	assert.ErrorIs(t, err, ErrInvalidSelector)
	assert.False(t, IsNotFound(err))

	_, ok := doc.Lookup("[")
	assert.False(t, ok)
}

func TestFindMatchesRoots(t *testing.T) {
	doc := MustParse(greeting)

	found, ok := doc.Lookup("p")
	require.True(t, ok)
	require.Equal(t, 1, found.Len())
	assert.Equal(t, "p", found.Nodes()[0].(*Element).Tag())
}

func TestFindChaining(t *testing.T) {
	doc := MustParse(greeting)

	t.Run("selector on a root matches again", func(t *testing.T) {
		em, err := doc.Find("em")
		require.NoError(t, err)

		again, err := em.Find("em")
		require.NoError(t, err)
		assert.Equal(t, em.Pretty(), again.Pretty())
	})

	t.Run("context selector no longer applies", func(t *testing.T) {
		em, err := doc.Find("p em")
		require.NoError(t, err)

		_, err = em.Find("p em")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("nested matches are copied subtrees", func(t *testing.T) {
		nested := MustParse("<div><div>x</div></div>")

		divs, err := nested.Find("div")
		require.NoError(t, err)
		assert.Equal(t, 2, divs.Len())

		// the outer copy still contains the inner div, which matches too
		again, err := divs.Find("div")
		require.NoError(t, err)
		assert.Equal(t, 3, again.Len())
	})
}

func TestFindDoesNotShareState(t *testing.T) {
	doc := MustParse(greeting)
	before := doc.Pretty()

	found, err := doc.Find("em")
	require.NoError(t, err)

	nodes := found.Nodes()
	nodes[0] = NewText("replaced")

	assert.Equal(t, before, doc.Pretty())
	assert.Equal(t, "em", found.Nodes()[0].(*Element).Tag())
}

func TestFindXPath(t *testing.T) {
	doc := MustParse(greeting)

	found, err := doc.FindXPath("//em")
	require.NoError(t, err)
	require.Equal(t, 1, found.Len())
	assert.Equal(t, "world", found.Text())

	_, err = doc.FindXPath("//span")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = doc.FindXPath("//[")
	assert.ErrorIs(t, err, ErrInvalidSelector)
}

func TestFindXPathRejectsScalars(t *testing.T) {
	doc := MustParse(greeting)

	for _, expr := range []string{"count(//p)", "string(//em)", "boolean(//em)"} {
		t.Run(expr, func(t *testing.T) {
			_, err := doc.FindXPath(expr)
			assert.ErrorIs(t, err, ErrInvalidSelector)
			assert.False(t, IsNotFound(err))
		})
	}
}

func TestFindXPathAttributes(t *testing.T) {
	doc := MustParse(`<p a="1">x</p><p a="2">y</p>`)

	found, err := doc.FindXPath("//p/@a")
	require.NoError(t, err)
	require.Equal(t, 2, found.Len())
	assert.Equal(t, "1", found.Nodes()[0].(*Text).Value())
	assert.Equal(t, "~HTML[1 2]", found.Pretty())

	text, err := doc.FindXPath("//p/text()")
	require.NoError(t, err)
	assert.Equal(t, "~HTML[x y]", text.Pretty())
}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "inline elements", src: greeting, want: "Hello, world!"},
		{name: "comments skipped", src: "<p>a<!-- note -->b</p>", want: "ab"},
		{name: "siblings concatenated", src: "<p>one</p><p>two</p>", want: "onetwo"},
		{name: "empty", src: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.src).Text())
		})
	}
}

func TestTextOfLookup(t *testing.T) {
	found, err := MustParse(greeting).Find("em")
	require.NoError(t, err)
	assert.Equal(t, "world", found.Text())
}

func TestHTML(t *testing.T) {
	out, err := MustParse(`<p class="a">x<br></p>`).HTML()
	require.NoError(t, err)
	assert.Equal(t, `<p class="a">x<br/></p>`, out)
}

func TestNewDocument(t *testing.T) {
	doc := New(NewElement("p", NewAttributes(Attr{Name: "id", Value: "x"}), NewText("hi")))

	found, err := doc.Find("#x")
	require.NoError(t, err)
	assert.Equal(t, "hi", found.Text())
}

func TestConvertDuplicateAttributes(t *testing.T) {
	n := &html.Node{
		Type: html.ElementNode,
		Data: "p",
		Attr: []html.Attribute{{Key: "a", Val: "1"}, {Key: "a", Val: "2"}},
	}

	doc := fromMatches([]*html.Node{n})
	el := doc.Nodes()[0].(*Element)

	assert.Equal(t, 1, el.Attrs().Len())
	v, _ := el.Attrs().Get("a")
	assert.Equal(t, "2", v)

	// the reconstituted pair list only carries the surviving value
	_, err := doc.Find(`p[a="1"]`)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = doc.Find(`p[a="2"]`)
	assert.NoError(t, err)
}

func TestParseDuplicateAttributes(t *testing.T) {
	doc := MustParse(`<p a="1" a="2">x</p>`)
	el := doc.Nodes()[0].(*Element)

	assert.Equal(t, 1, el.Attrs().Len())
	v, ok := el.Attrs().Get("a")
	require.True(t, ok)
	assert.Equal(t, "2", v)
	assert.Equal(t, "~HTML[<p a=\"2\">\n  x\n</p>]", doc.Pretty())
}

func TestConcurrentReaders(t *testing.T) {
	doc := MustParse(greeting)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			found, err := doc.Find("em")
			assert.NoError(t, err)
			assert.Equal(t, "world", found.Text())
			assert.Equal(t, "Hello, world!", doc.Text())
		}()
	}
	wg.Wait()
}
