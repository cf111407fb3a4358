package domain

import "time"

// EmitStats counts the elements written to a BioPAX document.
type EmitStats struct {
	CellularLocations int `json:"cellularLocations" yaml:"cellularLocations"`
	Proteins          int `json:"proteins" yaml:"proteins"`
	SmallMolecules    int `json:"smallMolecules" yaml:"smallMolecules"`
	Vocabularies      int `json:"interactionVocabularies" yaml:"interactionVocabularies"`
	Reactions         int `json:"biochemicalReactions" yaml:"biochemicalReactions"`
	Stoichiometries   int `json:"stoichiometries" yaml:"stoichiometries"`
}

// ConversionReport describes one completed conversion run.
type ConversionReport struct {
	// RunID correlates log lines of a single run.
	RunID string

	// InputPath is the CellDesigner source file.
	InputPath string

	// OutputPath is the BioPAX destination file.
	OutputPath string

	// Model summarises the extracted intermediate model.
	Model ModelStats

	// Emitted counts the written BioPAX elements.
	Emitted EmitStats

	// Bytes is the size of the written document.
	Bytes int

	// Duration is the wall time of the run.
	Duration time.Duration
}
