package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/GriffinCanCode/htmldoc/internal/logging"
	"github.com/GriffinCanCode/htmldoc/internal/monitoring"
	"github.com/microcosm-cc/bluemonday"
	"github.com/saintfish/chardet"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

// DefaultMaxSize limits input to 10MB to prevent memory exhaustion
const DefaultMaxSize = 10 * 1024 * 1024

// Parse modes, used as the mode label on parse metrics and log lines
const (
	ModeFragment = "fragment"
	ModeDocument = "document"
	ModeBytes    = "bytes"
)

// Options controls parsing.
type Options struct {
	// MaxSize is the largest accepted input in bytes; 0 disables the limit.
	MaxSize int

	// DetectCharset enables encoding detection in ParseBytes for input that
	// is not valid UTF-8.
	DetectCharset bool

	// Sanitize runs input through Policy before parsing.
	Sanitize bool

	// Policy is the sanitization policy; bluemonday.UGCPolicy when nil.
	Policy *bluemonday.Policy
}

// DefaultOptions returns the options used by the package-level Parse.
func DefaultOptions() Options {
	return Options{
		MaxSize:       DefaultMaxSize,
		DetectCharset: true,
	}
}

// Parser parses HTML into documents. It holds no per-call state and is safe
// for concurrent use.
type Parser struct {
	opts    Options
	policy  *bluemonday.Policy
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewParser creates a parser. A nil logger discards output.
func NewParser(opts Options, logger *logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewNop()
	}
	p := &Parser{opts: opts, logger: logger}
	if opts.Sanitize {
		p.policy = opts.Policy
		if p.policy == nil {
			p.policy = bluemonday.UGCPolicy()
		}
	}
	return p
}

// WithMetrics returns a copy of the parser that records parse counts and
// durations on metrics.
func (p *Parser) WithMetrics(metrics *monitoring.Metrics) *Parser {
	cp := *p
	cp.metrics = metrics
	return &cp
}

var defaultParser = NewParser(DefaultOptions(), nil)

// Parse parses src as a body fragment with the default options.
func Parse(src string) (*Document, error) {
	return defaultParser.Parse(src)
}

// MustParse is Parse for literals known to be valid; it panics on error.
func MustParse(src string) *Document {
	doc, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return doc
}

// Parse parses src as the content of a <body> element. The result holds the
// fragment's top-level nodes.
func (p *Parser) Parse(src string) (*Document, error) {
	start := time.Now()
	doc, err := p.parseFragment(ModeFragment, src)
	p.observe(ModeFragment, start, err)
	return doc, err
}

// ParseDocument parses src as a complete HTML document. Missing <html>,
// <head> and <body> elements are synthesized; the doctype is dropped.
func (p *Parser) ParseDocument(src string) (*Document, error) {
	start := time.Now()
	doc, err := p.parseDocument(src)
	p.observe(ModeDocument, start, err)
	return doc, err
}

// ParseBytes decodes data to UTF-8 and parses it as a body fragment. Valid
// UTF-8 is used as-is; anything else goes through charset detection when
// enabled.
func (p *Parser) ParseBytes(data []byte) (*Document, error) {
	start := time.Now()
	doc, err := p.parseBytes(data)
	p.observe(ModeBytes, start, err)
	return doc, err
}

func (p *Parser) parseFragment(mode, src string) (*Document, error) {
	src, err := p.prepare(mode, src)
	if err != nil {
		return nil, err
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), body)
	if err != nil {
		return nil, p.fail(mode, fmt.Errorf("%w: %v", ErrParse, err))
	}
	return p.build(mode, nodes), nil
}

func (p *Parser) parseDocument(src string) (*Document, error) {
	src, err := p.prepare(ModeDocument, src)
	if err != nil {
		return nil, err
	}

	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, p.fail(ModeDocument, fmt.Errorf("%w: %v", ErrParse, err))
	}
	return p.build(ModeDocument, []*html.Node{root}), nil
}

func (p *Parser) parseBytes(data []byte) (*Document, error) {
	if err := p.checkSize(len(data)); err != nil {
		return nil, p.fail(ModeBytes, err)
	}

	src, err := p.decode(data)
	if err != nil {
		return nil, p.fail(ModeBytes, err)
	}
	return p.parseFragment(ModeBytes, src)
}

func (p *Parser) decode(data []byte) (string, error) {
	if utf8.Valid(data) || !p.opts.DetectCharset {
		return string(data), nil
	}

	label := detectCharset(data)
	r, err := charset.NewReaderLabel(label, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: charset %s: %v", ErrParse, label, err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: decode %s: %v", ErrParse, label, err)
	}
	p.logger.Debug("decoded input", logging.Mode(ModeBytes), zap.String("charset", label), logging.Bytes(len(data)))
	return string(decoded), nil
}

// detectCharset returns the most likely charset label, "utf-8" when unsure
func detectCharset(data []byte) string {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil || result.Charset == "" {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

func (p *Parser) prepare(mode, src string) (string, error) {
	if err := p.checkSize(len(src)); err != nil {
		return "", p.fail(mode, err)
	}
	if p.policy != nil {
		src = p.policy.Sanitize(src)
	}
	return src, nil
}

func (p *Parser) checkSize(n int) error {
	if p.opts.MaxSize > 0 && n > p.opts.MaxSize {
		return fmt.Errorf("%w: input of %d bytes exceeds maximum size of %d bytes", ErrParse, n, p.opts.MaxSize)
	}
	return nil
}

func (p *Parser) build(mode string, nodes []*html.Node) *Document {
	var c converter
	doc := &Document{nodes: c.forest(nodes)}
	if c.dropped > 0 {
		p.logger.Debug("dropped unsupported nodes", logging.Mode(mode), zap.Int("count", c.dropped))
	}
	return doc
}

func (p *Parser) fail(mode string, err error) error {
	p.logger.Warn("parse failed", logging.Mode(mode), zap.Error(err))
	return err
}

func (p *Parser) observe(mode string, start time.Time, err error) {
	if p.metrics != nil {
		p.metrics.RecordParse(mode, err, time.Since(start))
	}
}
