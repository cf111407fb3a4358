package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Model is the intermediate representation produced by extraction.
// Every table preserves document order so "first X" selections are
// deterministic. A Model must be treated as read-only once Index has run.
type Model struct {
	SpeciesAliases *orderedmap.OrderedMap[string, SpeciesAlias] `json:"speciesAliases" yaml:"speciesAliases"`
	Proteins       *orderedmap.OrderedMap[string, Protein]      `json:"proteins" yaml:"proteins"`
	Compartments   *orderedmap.OrderedMap[string, Compartment]  `json:"compartments" yaml:"compartments"`
	Species        *orderedmap.OrderedMap[string, Species]      `json:"species" yaml:"species"`
	Reactions      *orderedmap.OrderedMap[string, Reaction]     `json:"reactions" yaml:"reactions"`

	aliasBySpecies   map[string]string
	speciesByProtein map[string]string
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{
		SpeciesAliases: orderedmap.New[string, SpeciesAlias](),
		Proteins:       orderedmap.New[string, Protein](),
		Compartments:   orderedmap.New[string, Compartment](),
		Species:        orderedmap.New[string, Species](),
		Reactions:      orderedmap.New[string, Reaction](),
	}
}

// Index builds the reverse lookups species -> first alias and
// protein reference -> first species, both in document order.
// It fails with a ResolutionError when a species breaks the
// protein-reference invariant.
func (m *Model) Index() error {
	m.aliasBySpecies = make(map[string]string, m.SpeciesAliases.Len())
	for pair := m.SpeciesAliases.Oldest(); pair != nil; pair = pair.Next() {
		if _, seen := m.aliasBySpecies[pair.Value.SpeciesID]; !seen {
			m.aliasBySpecies[pair.Value.SpeciesID] = pair.Key
		}
	}

	m.speciesByProtein = make(map[string]string, m.Proteins.Len())
	for pair := m.Species.Oldest(); pair != nil; pair = pair.Next() {
		sp := pair.Value
		switch {
		case sp.Class == ClassProtein && sp.ProteinRef == "":
			return &ResolutionError{Entity: "species", ID: sp.ID, Reason: "class PROTEIN without proteinReference"}
		case sp.Class != ClassProtein && sp.ProteinRef != "":
			return &ResolutionError{Entity: "species", ID: sp.ID, Reason: "proteinReference on non-PROTEIN class " + sp.Class.String()}
		case sp.Class == ClassProtein:
			if _, seen := m.speciesByProtein[sp.ProteinRef]; !seen {
				m.speciesByProtein[sp.ProteinRef] = sp.ID
			}
		}
	}
	return nil
}

// AliasForSpecies returns the first alias declared for a species.
func (m *Model) AliasForSpecies(speciesID string) (string, bool) {
	id, ok := m.aliasBySpecies[speciesID]
	return id, ok
}

// SpeciesForProtein returns the first species referencing a protein.
func (m *Model) SpeciesForProtein(proteinID string) (string, bool) {
	id, ok := m.speciesByProtein[proteinID]
	return id, ok
}

// Stats returns per-table counts.
func (m *Model) Stats() ModelStats {
	stats := ModelStats{
		SpeciesAliases: m.SpeciesAliases.Len(),
		Proteins:       m.Proteins.Len(),
		Compartments:   m.Compartments.Len(),
		Species:        m.Species.Len(),
		Reactions:      m.Reactions.Len(),
	}
	for pair := m.Species.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Class == ClassSimpleMolecule {
			stats.SimpleMolecules++
		}
	}
	return stats
}

// ModelStats summarises an extracted model.
type ModelStats struct {
	SpeciesAliases  int `json:"speciesAliases" yaml:"speciesAliases"`
	Proteins        int `json:"proteins" yaml:"proteins"`
	Compartments    int `json:"compartments" yaml:"compartments"`
	Species         int `json:"species" yaml:"species"`
	SimpleMolecules int `json:"simpleMolecules" yaml:"simpleMolecules"`
	Reactions       int `json:"reactions" yaml:"reactions"`
}
