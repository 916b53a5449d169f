package htmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicAPI(t *testing.T) {
	doc, err := Parse("<p>Hello, <em>world</em>!</p>")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", doc.Text())

	em, err := doc.Find("em")
	require.NoError(t, err)
	assert.Equal(t, "~HTML[<em>\n  world\n</em>]", em.Pretty())

	_, err = doc.Find("span")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NewParser(Options{MaxSize: 1}, nil).Parse("<p></p>")
	assert.ErrorIs(t, err, ErrParse)
}

func TestNewParserWithLogger(t *testing.T) {
	logger, err := NewLogger(LogConfig{Level: "error"})
	require.NoError(t, err)

	p := NewParser(DefaultOptions(), logger)
	doc, err := p.Parse("<b>x</b>")
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Len())

	assert.NotNil(t, NopLogger())
}

func TestNewParserFromConfig(t *testing.T) {
	t.Setenv("HTMLDOC_MAX_SIZE", "4")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	p, err := NewParserFromConfig(cfg)
	require.NoError(t, err)

	_, err = p.Parse("<p>too long</p>")
	assert.ErrorIs(t, err, ErrParse)

	bad := DefaultConfig()
	bad.Logging.Level = "loud"
	_, err = NewParserFromConfig(bad)
	assert.Error(t, err)
}
