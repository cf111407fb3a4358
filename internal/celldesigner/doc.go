// Package celldesigner extracts the intermediate pathway model from
// CellDesigner-flavoured SBML.
//
// The extension namespace is read from the document's own declarations.
// Every "find" follows first-match-in-document-order semantics: later
// matches are ignored, never treated as an error.
package celldesigner
