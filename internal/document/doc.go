// Package document wraps parsed HTML in an immutable node tree.
//
// Parsing, CSS selector matching and text extraction are delegated to
// golang.org/x/net/html, cascadia and goquery. This package owns the node
// model and the conversions at that boundary:
//   - node: Element, Comment and Text, a closed set of node shapes
//   - attributes: key-unique, insertion-ordered attribute mapping
//   - convert: html.Node forests to and from the node model
//   - parser: fragment and full-document parsing, charset detection, sanitization
//   - lookup: CSS and XPath lookup returning new documents
//   - pretty: the ~HTML[...] debug rendering
//   - export: JSON and YAML encodings of the tree
//
// Example Usage:
//
//	doc, err := document.Parse("<p>Hello, <em>world</em>!</p>")
//	if err != nil {
//	    return err
//	}
//	em, err := doc.Find("em")
//	if errors.Is(err, document.ErrNotFound) {
//	    // no match
//	}
//	fmt.Println(doc.Text(), em)
package document
