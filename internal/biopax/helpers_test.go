package biopax

import (
	"context"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sbml2biopax/internal/celldesigner"
	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
	"github.com/custodia-labs/sbml2biopax/internal/testhelpers"
)

func extract(t *testing.T, m testhelpers.Model) *domain.Model {
	t.Helper()
	model, err := celldesigner.New().Read(context.Background(), []byte(m.XML()))
	require.NoError(t, err)
	return model
}

func emit(t *testing.T, m testhelpers.Model, opts Options) *Emission {
	t.Helper()
	emission, err := DefaultPipeline().Process(context.Background(), extract(t, m), opts)
	require.NoError(t, err)
	return emission
}

// entity returns the top-level element with the given name and rdf:ID.
func entity(t *testing.T, doc *Document, name, id string) *etree.Element {
	t.Helper()
	for _, el := range doc.Entities() {
		if el.FullTag() == name && el.SelectAttrValue(rdfID, "") == id {
			return el
		}
	}
	require.Failf(t, "entity not found", "%s %s", name, id)
	return nil
}

func names(doc *Document) []string {
	var out []string
	for _, el := range doc.Entities() {
		out = append(out, el.FullTag())
	}
	return out
}

func count(doc *Document, name string) int {
	n := 0
	for _, el := range doc.Entities() {
		if el.FullTag() == name {
			n++
		}
	}
	return n
}

// unresolved lists every rdf:resource that names no rdf:ID or rdf:about in
// the document. The ontology import points outside and is skipped.
func unresolved(doc *Document) []string {
	declared := map[string]bool{}
	var refs []string
	for _, el := range doc.Root.FindElements(".//*") {
		if id := el.SelectAttr(rdfID); id != nil {
			declared[id.Value] = true
		}
		if about := el.SelectAttr(rdfAbout); about != nil {
			declared[about.Value] = true
		}
		if ref := el.SelectAttr(rdfResource); ref != nil && el.FullTag() != owlImports {
			refs = append(refs, ref.Value)
		}
	}

	var missing []string
	for _, ref := range refs {
		if !declared[strings.TrimPrefix(ref, "#")] {
			missing = append(missing, ref)
		}
	}
	return missing
}
