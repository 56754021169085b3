// Package linebreak reflows long prose lines in Quarto and Pandoc Markdown
// documents into one sentence or clause per line.
//
// Lines are split at sentence terminators first, then at colons and
// semicolons, then before em-dashes, and finally after closing parentheses
// or at commas when a piece is still very long. Citations such as
// [@doi:10.1000/xyz] and decimal numbers are masked before splitting so they
// are never fractured.
//
// Structural regions pass through byte-for-byte:
//   - YAML front matter at the start of the document
//   - Fenced code blocks (``` and ~~~)
//   - Colon-fenced divs (:::) at any nesting depth
//   - Display math ($$)
//
// Example:
//
//	out := linebreak.BreakText(doc)
//
// Streaming use with custom thresholds:
//
//	report, err := linebreak.Process(linebreak.ProcessRequest{
//		Reader:  os.Stdin,
//		Writer:  os.Stdout,
//		Options: []linebreak.Option{linebreak.WithVeryLongLength(120)},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// A document can opt out, or override thresholds, from its front matter:
//
//	---
//	title: Notes
//	linebreak:
//	  colon-min-length: 100
//	---
package linebreak
