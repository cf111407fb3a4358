package biopax

import (
	"github.com/beevik/etree"
)

// newElement creates a detached element with a prefixed name such as
// "bp:Protein". Prefixes are resolved against the root's namespace table.
func newElement(name string, attrs ...string) *etree.Element {
	el := etree.NewElement(name)
	for i := 0; i+1 < len(attrs); i += 2 {
		el.CreateAttr(attrs[i], attrs[i+1])
	}
	return el
}

// literal builds a typed literal property.
func literal(name, text, datatype string) *etree.Element {
	el := newElement(name, rdfDatatype, datatype)
	el.SetText(text)
	return el
}

// resource builds an object property pointing at ref.
func resource(name, ref string) *etree.Element {
	return newElement(name, rdfResource, ref)
}

// appendAll adds children in order and returns parent.
func appendAll(parent *etree.Element, children ...*etree.Element) *etree.Element {
	for _, c := range children {
		parent.AddChild(c)
	}
	return parent
}

// Document is a BioPAX RDF/XML document under construction.
type Document struct {
	Root *etree.Element
}

// NewDocument builds the rdf:RDF root with the namespace table and the
// owl:Ontology that imports the BioPAX Level 3 ontology.
func NewDocument() *Document {
	root := newElement(rdfRDF)
	root.CreateAttr("xmlns", NamespaceDefault)
	root.CreateAttr("xmlns:rdf", NamespaceRDF)
	root.CreateAttr("xmlns:owl", NamespaceOWL)
	root.CreateAttr("xmlns:xsd", NamespaceXSD)
	root.CreateAttr("xmlns:bp", NamespaceBP)

	root.CreateElement(owlOntology).AddChild(resource(owlImports, NamespaceBP))

	return &Document{Root: root}
}

// Add appends top-level entities after everything emitted so far.
func (d *Document) Add(entities ...*etree.Element) {
	appendAll(d.Root, entities...)
}

// Entities returns the top-level elements following the ontology header.
func (d *Document) Entities() []*etree.Element {
	children := d.Root.ChildElements()
	if len(children) == 0 {
		return nil
	}
	return children[1:]
}
