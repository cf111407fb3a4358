package biopax

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// EncodeOptions controls serialization.
type EncodeOptions struct {
	// Indent is the number of spaces per level; zero writes a single line.
	Indent int

	// XMLDeclaration writes the <?xml ...?> header first.
	XMLDeclaration bool
}

// Encode serializes doc to w. The same document always produces the same
// bytes, and doc itself is left untouched.
func Encode(w io.Writer, doc *Document, opts EncodeOptions) error {
	if doc == nil || doc.Root == nil {
		return errors.New("document is nil")
	}

	out := etree.NewDocument()
	if opts.XMLDeclaration {
		out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	}
	out.SetRoot(doc.Root.Copy())

	if opts.Indent > 0 {
		out.Indent(opts.Indent)
	} else {
		out.Indent(etree.NoIndent)
	}

	b, err := out.WriteToBytes()
	if err != nil {
		return fmt.Errorf("encode %s: %w", rdfRDF, err)
	}

	// Terminate the last line like every other text file.
	b = append(bytes.TrimRight(b, " \t\r\n"), '\n')
	_, err = w.Write(b)
	return err
}
