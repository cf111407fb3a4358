// Package domain defines the core entities for sbml2biopax.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the intermediate pathway model shared by extraction and
// emission:
//
//   - Model: Ordered tables of aliases, proteins, compartments, species, reactions
//   - Reaction: A reaction with base and stoichiometric participants
//   - ConversionSettings: Output and watch settings
//   - ConversionReport: The outcome of one conversion run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, the ordered-map container
//   - Cannot Import: Any internal/ package
package domain
