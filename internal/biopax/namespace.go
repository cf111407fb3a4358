package biopax

// Namespace URIs bound on the rdf:RDF root.
const (
	NamespaceDefault = "http://www.pantherdb.org/pathways/biopax#"
	NamespaceRDF     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceOWL     = "http://www.w3.org/2002/07/owl#"
	NamespaceXSD     = "http://www.w3.org/2001/XMLSchema#"
	NamespaceBP      = "http://www.biopax.org/release/biopax-level3.owl#"
)

// Literal datatypes.
const (
	XSDString = NamespaceXSD + "string"
	XSDFloat  = NamespaceXSD + "float"
)

// Synthetic identifiers.
const (
	// InteractionVocabularyPrefix precedes the reaction type in the
	// rdf:about of an InteractionVocabulary.
	InteractionVocabularyPrefix = "CELLDESIGNER_INTERACTION_VOCABULARY="

	// StoichiometryPrefix precedes "<reactionID>_<n>" in Stoichiometry ids.
	StoichiometryPrefix = "PARTICIPANT_STOICHIOMETRY_"

	// DefaultCoefficient is written when a participant has no stoichiometry.
	DefaultCoefficient = "1.0"
)

// Qualified names used in the output.
const (
	rdfRDF      = "rdf:RDF"
	rdfID       = "rdf:ID"
	rdfAbout    = "rdf:about"
	rdfResource = "rdf:resource"
	rdfDatatype = "rdf:datatype"

	owlOntology = "owl:Ontology"
	owlImports  = "owl:imports"

	bpCellularLocationVocabulary = "bp:CellularLocationVocabulary"
	bpProtein                    = "bp:Protein"
	bpSmallMolecule              = "bp:SmallMolecule"
	bpInteractionVocabulary      = "bp:InteractionVocabulary"
	bpBiochemicalReaction        = "bp:BiochemicalReaction"
	bpStoichiometry              = "bp:Stoichiometry"

	bpDisplayName               = "bp:displayName"
	bpStandardName              = "bp:standardName"
	bpCellularLocation          = "bp:cellularLocation"
	bpTerm                      = "bp:term"
	bpLeft                      = "bp:left"
	bpRight                     = "bp:right"
	bpInteractionType           = "bp:interactionType"
	bpConversionDirection       = "bp:conversionDirection"
	bpParticipantStoichiometry  = "bp:participantStoichiometry"
	bpPhysicalEntity            = "bp:physicalEntity"
	bpStoichiometricCoefficient = "bp:stoichiometricCoefficient"
)

// fragment turns an id into a same-document reference.
func fragment(id string) string {
	return "#" + id
}
