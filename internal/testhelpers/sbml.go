// Package testhelpers provides CellDesigner fixtures for testing sbml2biopax components.
package testhelpers

import (
	"fmt"
	"strings"
)

// ExtensionNamespace is the namespace CellDesigner 4.x writes.
const ExtensionNamespace = "http://www.sbml.org/2001/ns/celldesigner"

// SBMLNamespace is the SBML Level 2 Version 4 namespace.
const SBMLNamespace = "http://www.sbml.org/sbml/level2/version4"

// Protein is a celldesigner:protein declaration.
type Protein struct {
	ID, Name, Type string
}

// Species is an SBML species with its CellDesigner identity.
type Species struct {
	ID, Name, Compartment, Class, ProteinRef string
}

// Alias is a celldesigner:speciesAlias.
type Alias struct {
	ID, Species string
}

// Ref is a reaction participant. Empty Stoichiometry omits the attribute.
type Ref struct {
	Species, Alias, Stoichiometry string
}

// Reaction is an SBML reaction. Empty Reversible omits the attribute.
type Reaction struct {
	ID, Reversible, Type string
	Reactants, Products  []Ref
}

// Model describes a CellDesigner document to render.
type Model struct {
	// Prefix binds the extension namespace; defaults to "celldesigner".
	Prefix string

	// MIRIAM writes an rdf:RDF block ahead of the model's extension.
	MIRIAM bool

	Compartments []string
	Proteins     []Protein
	Species      []Species
	Aliases      []Alias
	Reactions    []Reaction

	// Omit lists local names of singleton elements to leave out
	// (e.g. "listOfSpeciesAliases", "reactionType").
	Omit []string
}

// KinaseModel is a one-compartment model with a protein, a small
// molecule and one reversible reaction between them.
func KinaseModel() Model {
	return Model{
		Compartments: []string{"c1"},
		Proteins:     []Protein{{ID: "p1", Name: "Kinase", Type: "GENERIC"}},
		Species: []Species{
			{ID: "s1", Name: "Kinase", Compartment: "c1", Class: "PROTEIN", ProteinRef: "p1"},
			{ID: "s2", Name: "ATP", Compartment: "c1", Class: "SIMPLE_MOLECULE"},
		},
		Aliases: []Alias{{ID: "sa1", Species: "s1"}, {ID: "sa2", Species: "s2"}},
		Reactions: []Reaction{{
			ID:         "re1",
			Reversible: "true",
			Type:       "STATE_TRANSITION",
			Reactants:  []Ref{{Species: "s1", Alias: "sa1"}},
			Products:   []Ref{{Species: "s2", Alias: "sa2", Stoichiometry: "2"}},
		}},
	}
}

func (m Model) omitted(local string) bool {
	for _, o := range m.Omit {
		if o == local {
			return true
		}
	}
	return false
}

// XML renders the model as CellDesigner SBML.
func (m Model) XML() string {
	p := m.Prefix
	if p == "" {
		p = "celldesigner"
	}
	var b strings.Builder
	w := func(format string, args ...any) { fmt.Fprintf(&b, format+"\n", args...) }

	w(`<?xml version="1.0" encoding="UTF-8"?>`)
	w(`<sbml xmlns="%s" xmlns:%s="%s" level="2" version="4">`, SBMLNamespace, p, ExtensionNamespace)
	w(`<model metaid="untitled" id="untitled">`)
	w(`<annotation>`)
	if m.MIRIAM {
		w(`<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">`)
		w(`<rdf:Description rdf:about="#untitled"/>`)
		w(`</rdf:RDF>`)
	}
	w(`<%s:extension>`, p)
	w(`<%s:modelVersion>4.0</%s:modelVersion>`, p, p)
	if !m.omitted("listOfSpeciesAliases") {
		w(`<%s:listOfSpeciesAliases>`, p)
		for _, a := range m.Aliases {
			w(`<%s:speciesAlias id="%s" species="%s">`, p, a.ID, a.Species)
			w(`<%s:activity>inactive</%s:activity>`, p, p)
			w(`</%s:speciesAlias>`, p)
		}
		w(`</%s:listOfSpeciesAliases>`, p)
	}
	if !m.omitted("listOfProteins") {
		w(`<%s:listOfProteins>`, p)
		for _, pr := range m.Proteins {
			w(`<%s:protein id="%s" name="%s" type="%s"/>`, p, pr.ID, pr.Name, pr.Type)
		}
		w(`</%s:listOfProteins>`, p)
	}
	w(`</%s:extension>`, p)
	w(`</annotation>`)

	if !m.omitted("listOfCompartments") {
		w(`<listOfCompartments>`)
		for _, c := range m.Compartments {
			w(`<compartment metaid="%s" id="%s" size="1" units="volume"/>`, c, c)
		}
		w(`</listOfCompartments>`)
	}

	if !m.omitted("listOfSpecies") {
		w(`<listOfSpecies>`)
		for _, s := range m.Species {
			w(`<species metaid="%s" id="%s" name="%s" compartment="%s" initialAmount="0">`, s.ID, s.ID, s.Name, s.Compartment)
			w(`<annotation>`)
			w(`<%s:extension>`, p)
			w(`<%s:positionToCompartment>inside</%s:positionToCompartment>`, p, p)
			w(`<%s:speciesIdentity>`, p)
			if !m.omitted("class") {
				w(`<%s:class>%s</%s:class>`, p, s.Class, p)
			}
			if s.ProteinRef != "" {
				w(`<%s:proteinReference>%s</%s:proteinReference>`, p, s.ProteinRef, p)
			}
			w(`</%s:speciesIdentity>`, p)
			w(`</%s:extension>`, p)
			w(`</annotation>`)
			w(`</species>`)
		}
		w(`</listOfSpecies>`)
	}

	if !m.omitted("listOfReactions") {
		w(`<listOfReactions>`)
		for _, r := range m.Reactions {
			m.writeReaction(w, p, r)
		}
		w(`</listOfReactions>`)
	}

	w(`</model>`)
	w(`</sbml>`)
	return b.String()
}

func (m Model) writeReaction(w func(string, ...any), p string, r Reaction) {
	if r.Reversible == "" {
		w(`<reaction metaid="%s" id="%s">`, r.ID, r.ID)
	} else {
		w(`<reaction metaid="%s" id="%s" reversible="%s">`, r.ID, r.ID, r.Reversible)
	}
	w(`<annotation>`)
	w(`<%s:extension>`, p)
	if !m.omitted("reactionType") {
		w(`<%s:reactionType>%s</%s:reactionType>`, p, r.Type, p)
	}
	base := func(list, item string, refs []Ref) {
		if m.omitted(list) {
			return
		}
		w(`<%s:%s>`, p, list)
		for _, ref := range refs {
			w(`<%s:%s species="%s" alias="%s"/>`, p, item, ref.Species, ref.Alias)
		}
		w(`</%s:%s>`, p, list)
	}
	base("baseReactants", "baseReactant", r.Reactants)
	base("baseProducts", "baseProduct", r.Products)
	if !m.omitted("connectScheme") {
		w(`<%s:connectScheme connectPolicy="direct" rectangleIndex="0">`, p)
		w(`<%s:listOfLineDirection>`, p)
		w(`<%s:lineDirection index="0" value="unknown"/>`, p)
		w(`</%s:listOfLineDirection>`, p)
		w(`</%s:connectScheme>`, p)
	}
	w(`</%s:extension>`, p)
	w(`</annotation>`)

	participants := func(list string, refs []Ref) {
		if m.omitted(list) {
			return
		}
		w(`<%s>`, list)
		for _, ref := range refs {
			if ref.Stoichiometry == "" {
				w(`<speciesReference metaid="CDMT_%s_%s" species="%s">`, r.ID, ref.Alias, ref.Species)
			} else {
				w(`<speciesReference metaid="CDMT_%s_%s" species="%s" stoichiometry="%s">`, r.ID, ref.Alias, ref.Species, ref.Stoichiometry)
			}
			w(`<annotation>`)
			w(`<%s:extension>`, p)
			w(`<%s:alias>%s</%s:alias>`, p, ref.Alias, p)
			w(`</%s:extension>`, p)
			w(`</annotation>`)
			w(`</speciesReference>`)
		}
		w(`</%s>`, list)
	}
	participants("listOfReactants", r.Reactants)
	participants("listOfProducts", r.Products)
	w(`</reaction>`)
}
