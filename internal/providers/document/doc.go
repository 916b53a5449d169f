// Package document exposes document operations as service tools.
//
// Tools:
//   - document.parse: parse and pretty-print
//   - document.select: CSS selector lookup
//   - document.xpath: XPath lookup
//   - document.text: plain-text projection
//   - document.export: JSON or YAML tree export
//   - document.html: re-rendered markup, optionally narrowed by a selector
//
// A lookup that matches nothing is a successful result with found=false; an
// invalid selector or a parse failure is a failed result.
//
// Example Usage:
//
//	p := document.NewProvider(parser, metrics, logger)
//	result, err := p.Execute(ctx, "document.select", map[string]interface{}{
//	    "html":     "<p>Hello, <em>world</em>!</p>",
//	    "selector": "em",
//	}, nil)
package document
