// Package layout provides a small document layout builder for pretty-printing.
//
// A Doc describes text plus the places where it may or must break:
//   - Text: literal text, printed as-is
//   - Line: a space when the enclosing group fits on one line, a newline otherwise
//   - HardLine: always a newline
//   - FlexBreak: a space if the segment that follows fits, a newline otherwise;
//     decided per break, so Fill packs as many items on a line as the width allows
//   - Nest: increases indentation for the newlines inside it
//   - Group: lays out its content flat when it fits in the remaining width
//
// Example Usage:
//
//	d := layout.Concat(
//	    layout.Text("<ul>"),
//	    layout.Nest(2, layout.Concat(layout.HardLine(), layout.Text("<li>"))),
//	    layout.HardLine(),
//	    layout.Text("</ul>"),
//	)
//	out := layout.String(d, 80)
package layout
