package document

import (
	"context"
	"errors"
	"fmt"
	"strings"

	htmldoc "github.com/GriffinCanCode/htmldoc/internal/document"
	"github.com/GriffinCanCode/htmldoc/internal/monitoring"
	"github.com/GriffinCanCode/htmldoc/internal/types"
	"github.com/goccy/go-yaml"
)

var (
	htmlParam = types.Parameter{Name: "html", Type: "string", Description: "HTML content", Required: true}
	fullParam = types.Parameter{Name: "full_document", Type: "boolean", Description: "Parse as a complete document instead of a body fragment (default: false)", Required: false}
)

func (p *Provider) tools() []types.Tool {
	return []types.Tool{
		{
			ID:          "document.parse",
			Name:        "Parse HTML",
			Description: "Parse HTML and return its pretty-printed tree",
			Parameters: []types.Parameter{
				htmlParam,
				fullParam,
				{Name: "width", Type: "number", Description: "Line width (default: 80)", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "document.select",
			Name:        "CSS Select",
			Description: "Find nodes by CSS selector",
			Parameters: []types.Parameter{
				htmlParam,
				fullParam,
				{Name: "selector", Type: "string", Description: "CSS selector", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "document.xpath",
			Name:        "XPath Select",
			Description: "Find nodes by XPath expression",
			Parameters: []types.Parameter{
				htmlParam,
				fullParam,
				{Name: "xpath", Type: "string", Description: "XPath expression", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "document.text",
			Name:        "Extract Text",
			Description: "Concatenated text content of the document",
			Parameters:  []types.Parameter{htmlParam, fullParam},
			Returns:     "object",
		},
		{
			ID:          "document.export",
			Name:        "Export Tree",
			Description: "Export the node tree as JSON or YAML",
			Parameters: []types.Parameter{
				htmlParam,
				fullParam,
				{Name: "format", Type: "string", Description: "json or yaml (default: json)", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "document.html",
			Name:        "Render HTML",
			Description: "Render the tree back to HTML, optionally narrowed by a CSS selector",
			Parameters: []types.Parameter{
				htmlParam,
				fullParam,
				{Name: "selector", Type: "string", Description: "CSS selector", Required: false},
			},
			Returns: "object",
		},
	}
}

// load parses the html parameter
func (p *Provider) load(params map[string]interface{}) (*htmldoc.Document, error) {
	src, ok := GetString(params, "html")
	if !ok || src == "" {
		return nil, errors.New("html parameter required")
	}

	var (
		doc *htmldoc.Document
		err error
	)
	if GetBool(params, "full_document", false) {
		doc, err = p.parser.ParseDocument(src)
	} else {
		doc, err = p.parser.Parse(src)
	}
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}
	return doc, nil
}

func (p *Provider) pretty(doc *htmldoc.Document, params map[string]interface{}) (string, error) {
	width := p.width
	if w, ok := GetInt(params, "width"); ok && w > 0 {
		width = w
	}

	var sb strings.Builder
	if err := doc.WritePretty(&sb, width); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (p *Provider) parse(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	doc, err := p.load(params)
	if err != nil {
		return Failure(err.Error())
	}

	pretty, err := p.pretty(doc, params)
	if err != nil {
		return Failure(fmt.Sprintf("pretty print failed: %v", err))
	}

	return Success(map[string]interface{}{
		"pretty": pretty,
		"nodes":  doc.Len(),
	})
}

func (p *Provider) selectCSS(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	selector, ok := GetString(params, "selector")
	if !ok || selector == "" {
		return Failure("selector parameter required")
	}

	doc, err := p.load(params)
	if err != nil {
		return Failure(err.Error())
	}

	found, err := doc.Find(selector)
	return p.lookupResult("css", found, err, params)
}

func (p *Provider) selectXPath(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	expr, ok := GetString(params, "xpath")
	if !ok || expr == "" {
		return Failure("xpath parameter required")
	}

	doc, err := p.load(params)
	if err != nil {
		return Failure(err.Error())
	}

	found, err := doc.FindXPath(expr)
	return p.lookupResult("xpath", found, err, params)
}

func (p *Provider) lookupResult(kind string, found *htmldoc.Document, err error, params map[string]interface{}) (*types.Result, error) {
	switch {
	case errors.Is(err, htmldoc.ErrNotFound):
		p.metrics.RecordLookup(kind, monitoring.OutcomeNotFound)
		return Success(map[string]interface{}{
			"found":  false,
			"count":  0,
			"text":   "",
			"pretty": "",
		})
	case err != nil:
		p.metrics.RecordLookup(kind, monitoring.OutcomeInvalid)
		return Failure(err.Error())
	}

	p.metrics.RecordLookup(kind, monitoring.OutcomeFound)
	pretty, err := p.pretty(found, params)
	if err != nil {
		return Failure(fmt.Sprintf("pretty print failed: %v", err))
	}
	return Success(map[string]interface{}{
		"found":  true,
		"count":  found.Len(),
		"text":   found.Text(),
		"pretty": pretty,
	})
}

func (p *Provider) text(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	doc, err := p.load(params)
	if err != nil {
		return Failure(err.Error())
	}

	text := doc.Text()
	return Success(map[string]interface{}{
		"text":   text,
		"length": len(text),
	})
}

func (p *Provider) export(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	format := "json"
	if f, ok := GetString(params, "format"); ok && f != "" {
		format = strings.ToLower(f)
	}

	var marshal func(*htmldoc.Document) ([]byte, error)
	switch format {
	case "json":
		marshal = func(d *htmldoc.Document) ([]byte, error) { return d.MarshalJSON() }
	case "yaml":
		marshal = func(d *htmldoc.Document) ([]byte, error) { return yaml.Marshal(d) }
	default:
		return Failure(fmt.Sprintf("unsupported format: %s", format))
	}

	doc, err := p.load(params)
	if err != nil {
		return Failure(err.Error())
	}

	data, err := marshal(doc)
	if err != nil {
		return Failure(fmt.Sprintf("%s export failed: %v", format, err))
	}
	return Success(map[string]interface{}{
		"format": format,
		"data":   string(data),
	})
}

func (p *Provider) html(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	doc, err := p.load(params)
	if err != nil {
		return Failure(err.Error())
	}

	if selector, ok := GetString(params, "selector"); ok && selector != "" {
		found, err := doc.Find(selector)
		if errors.Is(err, htmldoc.ErrNotFound) {
			p.metrics.RecordLookup("css", monitoring.OutcomeNotFound)
			return Success(map[string]interface{}{"found": false, "html": ""})
		}
		if err != nil {
			p.metrics.RecordLookup("css", monitoring.OutcomeInvalid)
			return Failure(err.Error())
		}
		p.metrics.RecordLookup("css", monitoring.OutcomeFound)
		doc = found
	}

	out, err := doc.HTML()
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"found": true, "html": out})
}
