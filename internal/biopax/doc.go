// Package biopax emits the intermediate pathway model as a BioPAX Level 3
// RDF/XML document.
//
// Emission runs as an ordered pipeline of stages over an in-memory element
// tree: cellular locations, proteins, small molecules, then reactions with
// their interaction vocabulary and stoichiometries. Nothing is written to
// the destination until every stage has succeeded.
package biopax
