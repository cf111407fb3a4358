package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SpeciesClass is the CellDesigner classification of a species.
type SpeciesClass string

// Species classes used by CellDesigner. Only Protein and SimpleMolecule
// are emitted as physical entities.
const (
	ClassProtein        SpeciesClass = "PROTEIN"
	ClassSimpleMolecule SpeciesClass = "SIMPLE_MOLECULE"
	ClassGene           SpeciesClass = "GENE"
	ClassRNA            SpeciesClass = "RNA"
	ClassAntisenseRNA   SpeciesClass = "ANTISENSE_RNA"
	ClassIon            SpeciesClass = "ION"
	ClassDrug           SpeciesClass = "DRUG"
	ClassPhenotype      SpeciesClass = "PHENOTYPE"
	ClassComplex        SpeciesClass = "COMPLEX"
	ClassDegraded       SpeciesClass = "DEGRADED"
	ClassUnknown        SpeciesClass = "UNKNOWN"
)

// String returns the string representation.
func (c SpeciesClass) String() string {
	return string(c)
}

// SpeciesAlias maps a diagram-level alias to the species it draws.
type SpeciesAlias struct {
	ID        string `json:"id" yaml:"id"`
	SpeciesID string `json:"species" yaml:"species"`
}

// Protein is a protein declaration from the model annotation.
type Protein struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Compartment corresponds 1:1 to a BioPAX cellular location.
type Compartment struct {
	ID     string `json:"id" yaml:"id"`
	MetaID string `json:"metaid,omitempty" yaml:"metaid,omitempty"`
}

// Species is the central entity every participant and physical entity
// derives from.
type Species struct {
	ID            string       `json:"id" yaml:"id"`
	MetaID        string       `json:"metaid,omitempty" yaml:"metaid,omitempty"`
	Name          string       `json:"name" yaml:"name"`
	CompartmentID string       `json:"compartment" yaml:"compartment"`
	Class         SpeciesClass `json:"class" yaml:"class"`

	// ProteinRef is read for every class; Index accepts it only on ClassProtein.
	ProteinRef string `json:"proteinReference,omitempty" yaml:"proteinReference,omitempty"`
}

// BaseParticipant is a diagram-level reactant or product.
type BaseParticipant struct {
	Alias     string `json:"alias" yaml:"alias"`
	SpeciesID string `json:"species" yaml:"species"`
}

// Participant is a reactant or product carrying stoichiometry.
// Stoichiometry is the raw attribute text and may be empty.
type Participant struct {
	Alias         string `json:"alias" yaml:"alias"`
	SpeciesID     string `json:"species" yaml:"species"`
	Stoichiometry string `json:"stoichiometry,omitempty" yaml:"stoichiometry,omitempty"`
}

// ParticipantSide distinguishes reactants from products.
type ParticipantSide string

// Participant sides.
const (
	SideReactant ParticipantSide = "reactant"
	SideProduct  ParticipantSide = "product"
)

// ConversionDirection is the BioPAX conversionDirection literal.
type ConversionDirection string

// Conversion directions emitted by the converter.
const (
	DirectionLeftToRight ConversionDirection = "LEFT_TO_RIGHT"
	DirectionReversible  ConversionDirection = "REVERSIBLE"
)

// Reaction is a reaction with its diagram and stoichiometric participants.
type Reaction struct {
	ID     string `json:"id" yaml:"id"`
	MetaID string `json:"metaid,omitempty" yaml:"metaid,omitempty"`

	// Reversible and Fast hold the raw attribute text; an absent
	// attribute is the empty string.
	Reversible string `json:"reversible,omitempty" yaml:"reversible,omitempty"`
	Fast       string `json:"fast,omitempty" yaml:"fast,omitempty"`

	ReactionType  string `json:"reactionType" yaml:"reactionType"`
	ConnectPolicy string `json:"connectPolicy,omitempty" yaml:"connectPolicy,omitempty"`

	BaseReactants []BaseParticipant `json:"baseReactants" yaml:"baseReactants"`
	BaseProducts  []BaseParticipant `json:"baseProducts" yaml:"baseProducts"`

	// Reactants and Products are keyed by alias in document order.
	Reactants *orderedmap.OrderedMap[string, Participant] `json:"reactants" yaml:"reactants"`
	Products  *orderedmap.OrderedMap[string, Participant] `json:"products" yaml:"products"`
}

// NewReaction returns a reaction with empty participant maps.
func NewReaction(id string) Reaction {
	return Reaction{
		ID:        id,
		Reactants: orderedmap.New[string, Participant](),
		Products:  orderedmap.New[string, Participant](),
	}
}

// Direction maps the reversible attribute to a conversion direction.
// Only the literal "false" is irreversible; "true" or absent is reversible.
func (r Reaction) Direction() ConversionDirection {
	if r.Reversible == "false" {
		return DirectionLeftToRight
	}
	return DirectionReversible
}

// FirstReactant returns the first reactant in document order.
func (r Reaction) FirstReactant() (Participant, bool) {
	return first(r.Reactants)
}

// FirstProduct returns the first product in document order.
func (r Reaction) FirstProduct() (Participant, bool) {
	return first(r.Products)
}

func first(m *orderedmap.OrderedMap[string, Participant]) (Participant, bool) {
	if m == nil {
		return Participant{}, false
	}
	pair := m.Oldest()
	if pair == nil {
		return Participant{}, false
	}
	return pair.Value, true
}
