package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent conversion failures.
// These are distinct from infrastructure (I/O) errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Conversion Errors.

	// ErrStructure indicates a required element or attribute is missing
	// from the source document.
	ErrStructure = errors.New("structure error")

	// ErrResolution indicates a cross-reference between model tables
	// could not be resolved.
	ErrResolution = errors.New("resolution error")

	// ErrEmptyParticipant indicates a reaction has no reactant or no product
	// to emit stoichiometry for.
	ErrEmptyParticipant = errors.New("empty participant error")
)

// StructureError reports a missing element or attribute in the source tree.
type StructureError struct {
	// Element is the local name of the missing element or attribute.
	Element string

	// Parent describes where the element was expected (e.g. "reaction re1").
	Parent string
}

func (e *StructureError) Error() string {
	if e.Parent == "" {
		return fmt.Sprintf("structure error: missing %s", e.Element)
	}
	return fmt.Sprintf("structure error: missing %s in %s", e.Element, e.Parent)
}

// Unwrap allows errors.Is(err, ErrStructure).
func (e *StructureError) Unwrap() error { return ErrStructure }

// ResolutionError reports an unresolvable cross-reference.
type ResolutionError struct {
	// Entity is the kind of record being resolved ("protein", "species", ...).
	Entity string

	// ID is the identifier of the record that failed to resolve.
	ID string

	// Reason is a short description of the missing link.
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolution error: %s %q: %s", e.Entity, e.ID, e.Reason)
}

// Unwrap allows errors.Is(err, ErrResolution).
func (e *ResolutionError) Unwrap() error { return ErrResolution }

// EmptyParticipantError reports a reaction side with no participants.
type EmptyParticipantError struct {
	ReactionID string
	Side       ParticipantSide
}

func (e *EmptyParticipantError) Error() string {
	return fmt.Sprintf("empty participant error: reaction %q has no %ss", e.ReactionID, e.Side)
}

// Unwrap allows errors.Is(err, ErrEmptyParticipant).
func (e *EmptyParticipantError) Unwrap() error { return ErrEmptyParticipant }
