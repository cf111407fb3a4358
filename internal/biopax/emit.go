package biopax

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
)

// emitCellularLocations writes one CellularLocationVocabulary per compartment.
func emitCellularLocations(e *Emission) error {
	for pair := e.Model.Compartments.Oldest(); pair != nil; pair = pair.Next() {
		e.Document.Add(newElement(bpCellularLocationVocabulary, rdfID, pair.Key))
		e.Stats.CellularLocations++
	}
	return nil
}

// emitProteins writes one Protein per declared protein, keyed by the alias
// of the first species that references it.
func emitProteins(e *Emission) error {
	for pair := e.Model.Proteins.Oldest(); pair != nil; pair = pair.Next() {
		protein := pair.Value
		ref, err := resolveProtein(e.Model, protein)
		if err != nil {
			return err
		}

		location := ref.CompartmentID
		if e.Options.LocationStyle == domain.LocationStyleFragment {
			location = fragment(location)
		}

		e.Document.Add(physicalEntity(bpProtein, ref.AliasID, protein.Name, location))
		e.Stats.Proteins++
	}
	return nil
}

// emitSmallMolecules writes one SmallMolecule per SIMPLE_MOLECULE species.
func emitSmallMolecules(e *Emission) error {
	for pair := e.Model.Species.Oldest(); pair != nil; pair = pair.Next() {
		species := pair.Value
		if species.Class != domain.ClassSimpleMolecule {
			continue
		}

		ref, err := resolveSpecies(e.Model, species)
		if err != nil {
			return err
		}

		e.Document.Add(physicalEntity(bpSmallMolecule, ref.AliasID, species.Name, fragment(ref.CompartmentID)))
		e.Stats.SmallMolecules++
	}
	return nil
}

func physicalEntity(name, id, displayName, location string) *etree.Element {
	return appendAll(newElement(name, rdfID, id),
		literal(bpDisplayName, displayName, XSDString),
		literal(bpStandardName, displayName, XSDString),
		resource(bpCellularLocation, location),
	)
}

// emitReactions writes, per reaction, the interaction vocabulary the first
// time its type is seen, the BiochemicalReaction and its two stoichiometries.
func emitReactions(e *Emission) error {
	for pair := e.Model.Reactions.Oldest(); pair != nil; pair = pair.Next() {
		rxn := pair.Value

		reactant, ok := rxn.FirstReactant()
		if !ok {
			return &domain.EmptyParticipantError{ReactionID: rxn.ID, Side: domain.SideReactant}
		}
		product, ok := rxn.FirstProduct()
		if !ok {
			return &domain.EmptyParticipantError{ReactionID: rxn.ID, Side: domain.SideProduct}
		}

		vocabRef, created := e.Vocabulary.Ensure(rxn.ReactionType)
		if created {
			e.Document.Add(appendAll(newElement(bpInteractionVocabulary, rdfAbout, vocabRef),
				literal(bpTerm, rxn.ReactionType, XSDString)))
			e.Stats.Vocabularies++
		}

		reactantSto, productSto := stoichiometryID(rxn.ID, 1), stoichiometryID(rxn.ID, 2)

		e.Document.Add(appendAll(newElement(bpBiochemicalReaction, rdfID, rxn.ID),
			resource(bpLeft, fragment(reactant.Alias)),
			resource(bpRight, fragment(product.Alias)),
			literal(bpStandardName, rxn.ID, XSDString),
			resource(bpInteractionType, vocabRef),
			literal(bpConversionDirection, string(rxn.Direction()), XSDString),
			resource(bpParticipantStoichiometry, fragment(reactantSto)),
			resource(bpParticipantStoichiometry, fragment(productSto)),
		))
		e.Stats.Reactions++

		if err := emitStoichiometries(e, rxn); err != nil {
			return err
		}
	}
	return nil
}

// emitStoichiometries writes the Stoichiometry of the first reactant (_1)
// and of the first product (_2).
func emitStoichiometries(e *Emission, rxn domain.Reaction) error {
	sides := []struct {
		side  domain.ParticipantSide
		first func() (domain.Participant, bool)
	}{
		{domain.SideReactant, rxn.FirstReactant},
		{domain.SideProduct, rxn.FirstProduct},
	}

	for i, s := range sides {
		participant, ok := s.first()
		if !ok {
			return &domain.EmptyParticipantError{ReactionID: rxn.ID, Side: s.side}
		}

		e.Document.Add(appendAll(newElement(bpStoichiometry, rdfID, stoichiometryID(rxn.ID, i+1)),
			resource(bpPhysicalEntity, fragment(participant.Alias)),
			literal(bpStoichiometricCoefficient, coefficient(participant), XSDFloat),
		))
		e.Stats.Stoichiometries++
	}
	return nil
}

func stoichiometryID(reactionID string, n int) string {
	return fmt.Sprintf("%s%s_%d", StoichiometryPrefix, reactionID, n)
}

// coefficient returns the source text unchanged, or 1.0 when absent.
func coefficient(p domain.Participant) string {
	if p.Stoichiometry == "" {
		return DefaultCoefficient
	}
	return p.Stoichiometry
}
