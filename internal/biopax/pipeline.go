package biopax

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
)

// Stage appends one family of entities to the document being emitted.
type Stage interface {
	// Name identifies the stage in errors and logs.
	Name() string

	// Emit appends elements to e.Document.
	Emit(ctx context.Context, e *Emission) error
}

// Emission is the state shared by the stages of one run.
type Emission struct {
	Document   *Document
	Model      *domain.Model
	Options    Options
	Vocabulary *Vocabulary
	Stats      domain.EmitStats
}

// Pipeline chains stages and runs them in order.
type Pipeline struct {
	stages []Stage
}

// NewPipeline creates a pipeline with the given stages.
// Stages are executed in the order provided.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{
		stages: stages,
	}
}

// DefaultPipeline returns the stages in output order: cellular locations,
// proteins, small molecules, reactions.
func DefaultPipeline() *Pipeline {
	return NewPipeline(
		stageFunc{name: "cellular locations", fn: emitCellularLocations},
		stageFunc{name: "proteins", fn: emitProteins},
		stageFunc{name: "small molecules", fn: emitSmallMolecules},
		stageFunc{name: "reactions", fn: emitReactions},
	)
}

// Process builds a fresh document from model by running every stage.
func (p *Pipeline) Process(ctx context.Context, model *domain.Model, opts Options) (*Emission, error) {
	if model == nil {
		return nil, fmt.Errorf("model is nil")
	}

	e := &Emission{
		Document:   NewDocument(),
		Model:      model,
		Options:    opts,
		Vocabulary: NewVocabulary(),
	}

	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := stage.Emit(ctx, e); err != nil {
			return nil, fmt.Errorf("emit %s: %w", stage.Name(), err)
		}
	}

	return e, nil
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(stage Stage) {
	p.stages = append(p.stages, stage)
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// stageFunc adapts a function to the Stage interface.
type stageFunc struct {
	name string
	fn   func(e *Emission) error
}

func (s stageFunc) Name() string { return s.name }

func (s stageFunc) Emit(_ context.Context, e *Emission) error { return s.fn(e) }
