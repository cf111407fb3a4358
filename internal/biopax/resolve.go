package biopax

import (
	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
)

// resolved holds the derived cross-references for one physical entity.
// The model itself is never modified.
type resolved struct {
	AliasID       string
	SpeciesID     string
	CompartmentID string
}

// resolveProtein follows protein -> first referencing species -> first alias.
func resolveProtein(model *domain.Model, protein domain.Protein) (resolved, error) {
	speciesID, ok := model.SpeciesForProtein(protein.ID)
	if !ok {
		return resolved{}, &domain.ResolutionError{
			Entity: "protein",
			ID:     protein.ID,
			Reason: "no species references it",
		}
	}

	species, ok := model.Species.Get(speciesID)
	if !ok {
		return resolved{}, &domain.ResolutionError{Entity: "protein", ID: protein.ID, Reason: "species " + speciesID + " not declared"}
	}

	aliasID, ok := model.AliasForSpecies(speciesID)
	if !ok {
		return resolved{}, &domain.ResolutionError{
			Entity: "protein",
			ID:     protein.ID,
			Reason: "species " + speciesID + " has no alias",
		}
	}

	return resolved{AliasID: aliasID, SpeciesID: speciesID, CompartmentID: species.CompartmentID}, nil
}

// resolveSpecies finds the first alias drawn for a species.
func resolveSpecies(model *domain.Model, species domain.Species) (resolved, error) {
	aliasID, ok := model.AliasForSpecies(species.ID)
	if !ok {
		return resolved{}, &domain.ResolutionError{
			Entity: "species",
			ID:     species.ID,
			Reason: "no alias references it",
		}
	}
	return resolved{AliasID: aliasID, SpeciesID: species.ID, CompartmentID: species.CompartmentID}, nil
}
