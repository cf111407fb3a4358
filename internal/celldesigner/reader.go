package celldesigner

import (
	"context"
	"fmt"

	"github.com/beevik/etree"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
	"github.com/custodia-labs/sbml2biopax/internal/core/ports/driven"
	"github.com/custodia-labs/sbml2biopax/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.ModelReader = (*Reader)(nil)

// Reader extracts the intermediate model from CellDesigner SBML.
type Reader struct{}

// New creates a new CellDesigner reader.
func New() *Reader {
	return &Reader{}
}

// Format returns the source format name.
func (r *Reader) Format() string {
	return "celldesigner"
}

// Read parses content and populates all five model tables.
func (r *Reader) Read(ctx context.Context, content []byte) (*domain.Model, error) {
	root, err := parseTree(content)
	if err != nil {
		return nil, err
	}

	doc, err := newDocument(root)
	if err != nil {
		return nil, err
	}
	logger.Debug("SBML namespace %q, CellDesigner namespace %q", doc.sbml, doc.ext)

	model := domain.NewModel()
	steps := []struct {
		name string
		run  func() error
	}{
		{"species aliases", func() (err error) { model.SpeciesAliases, err = extractSpeciesAliases(doc); return }},
		{"proteins", func() (err error) { model.Proteins, err = extractProteins(doc); return }},
		{"compartments", func() (err error) { model.Compartments, err = extractCompartments(doc); return }},
		{"species", func() (err error) { model.Species, err = extractSpecies(doc); return }},
		{"reactions", func() (err error) { model.Reactions, err = extractReactions(doc); return }},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := step.run(); err != nil {
			return nil, fmt.Errorf("extract %s: %w", step.name, err)
		}
	}

	if err := model.Index(); err != nil {
		return nil, err
	}

	stats := model.Stats()
	logger.Debug("extracted %d aliases, %d proteins, %d compartments, %d species, %d reactions",
		stats.SpeciesAliases, stats.Proteins, stats.Compartments, stats.Species, stats.Reactions)
	return model, nil
}

// document holds the parsed tree and the two namespaces lookups use.
type document struct {
	root  *etree.Element
	model *etree.Element
	sbml  string
	ext   string
}

func newDocument(root *etree.Element) (*document, error) {
	doc := &document{root: root, sbml: root.NamespaceURI()}

	doc.model = child(root, doc.sbml, "model")
	if doc.model == nil {
		return nil, &domain.StructureError{Element: "model", Parent: root.Tag}
	}

	annotation := child(doc.model, doc.sbml, "annotation")
	if annotation == nil {
		return nil, &domain.StructureError{Element: "annotation", Parent: "model"}
	}
	doc.ext = extensionNamespace(annotation)
	return doc, nil
}

// extensionNamespace reads the CellDesigner namespace URI from the model
// annotation. Whatever prefix the document binds is accepted, and sibling
// annotations such as MIRIAM rdf:RDF blocks are skipped. When no extension
// element is present the namespace of listOfSpeciesAliases is used.
func extensionNamespace(annotation *etree.Element) string {
	for _, c := range annotation.ChildElements() {
		if c.Tag == "extension" {
			return c.NamespaceURI()
		}
	}
	if list := descendantByTag(annotation, "listOfSpeciesAliases"); list != nil {
		return list.NamespaceURI()
	}
	return ""
}

// annotationList finds a list element inside the model's annotation block.
func (d *document) annotationList(local string) (*etree.Element, error) {
	var list *etree.Element
	if d.ext != "" {
		list = descendant(child(d.model, d.sbml, "annotation"), d.ext, local)
	}
	if list == nil {
		return nil, &domain.StructureError{Element: local, Parent: "model annotation"}
	}
	return list, nil
}

// modelList finds an SBML list element anywhere in the document.
func (d *document) modelList(local string) (*etree.Element, error) {
	list := descendant(d.root, d.sbml, local)
	if list == nil {
		return nil, &domain.StructureError{Element: local, Parent: "sbml"}
	}
	return list, nil
}

// requireID reads the id attribute every keyed record must carry.
func requireID(el *etree.Element, position int) (string, error) {
	id := attrValue(el, "id")
	if id == "" {
		return "", &domain.StructureError{
			Element: "id attribute",
			Parent:  fmt.Sprintf("%s #%d", el.Tag, position+1),
		}
	}
	return id, nil
}

// extractSpeciesAliases maps alias id -> species id.
func extractSpeciesAliases(doc *document) (*orderedmap.OrderedMap[string, domain.SpeciesAlias], error) {
	list, err := doc.annotationList("listOfSpeciesAliases")
	if err != nil {
		return nil, err
	}

	aliases := orderedmap.New[string, domain.SpeciesAlias]()
	for i, el := range list.ChildElements() {
		id, err := requireID(el, i)
		if err != nil {
			return nil, err
		}
		aliases.Set(id, domain.SpeciesAlias{ID: id, SpeciesID: attrValue(el, "species")})
	}
	return aliases, nil
}

// extractProteins maps protein id -> name and type.
func extractProteins(doc *document) (*orderedmap.OrderedMap[string, domain.Protein], error) {
	list, err := doc.annotationList("listOfProteins")
	if err != nil {
		return nil, err
	}

	proteins := orderedmap.New[string, domain.Protein]()
	for i, el := range list.ChildElements() {
		id, err := requireID(el, i)
		if err != nil {
			return nil, err
		}
		proteins.Set(id, domain.Protein{
			ID:   id,
			Name: attrValue(el, "name"),
			Type: attrValue(el, "type"),
		})
	}
	return proteins, nil
}

// extractCompartments maps compartment id -> metaid.
func extractCompartments(doc *document) (*orderedmap.OrderedMap[string, domain.Compartment], error) {
	list, err := doc.modelList("listOfCompartments")
	if err != nil {
		return nil, err
	}

	compartments := orderedmap.New[string, domain.Compartment]()
	for i, el := range list.ChildElements() {
		id, err := requireID(el, i)
		if err != nil {
			return nil, err
		}
		compartments.Set(id, domain.Compartment{ID: id, MetaID: attrValue(el, "metaid")})
	}
	return compartments, nil
}

// extractSpecies reads species with their CellDesigner class and protein
// reference.
func extractSpecies(doc *document) (*orderedmap.OrderedMap[string, domain.Species], error) {
	list, err := doc.modelList("listOfSpecies")
	if err != nil {
		return nil, err
	}

	species := orderedmap.New[string, domain.Species]()
	for i, el := range list.ChildElements() {
		id, err := requireID(el, i)
		if err != nil {
			return nil, err
		}

		class := descendant(el, doc.ext, "class")
		if class == nil {
			return nil, &domain.StructureError{Element: "class", Parent: "species " + id}
		}

		sp := domain.Species{
			ID:            id,
			MetaID:        attrValue(el, "metaid"),
			Name:          attrValue(el, "name"),
			CompartmentID: attrValue(el, "compartment"),
			Class:         domain.SpeciesClass(content(class)),
		}
		// Read for every class; Model.Index rejects a reference on a
		// non-protein class and a protein without one.
		if ref := descendant(el, doc.ext, "proteinReference"); ref != nil {
			sp.ProteinRef = content(ref)
		}
		species.Set(id, sp)
	}
	return species, nil
}

// extractReactions reads every reaction with its participants.
func extractReactions(doc *document) (*orderedmap.OrderedMap[string, domain.Reaction], error) {
	list, err := doc.modelList("listOfReactions")
	if err != nil {
		return nil, err
	}

	reactions := orderedmap.New[string, domain.Reaction]()
	for i, el := range list.ChildElements() {
		id, err := requireID(el, i)
		if err != nil {
			return nil, err
		}
		rxn, err := extractReaction(doc, el, id)
		if err != nil {
			return nil, err
		}
		reactions.Set(id, rxn)
	}
	return reactions, nil
}

func extractReaction(doc *document, el *etree.Element, id string) (domain.Reaction, error) {
	parent := "reaction " + id
	required := func(space, local string) (*etree.Element, error) {
		found := descendant(el, space, local)
		if found == nil {
			return nil, &domain.StructureError{Element: local, Parent: parent}
		}
		return found, nil
	}

	rxn := domain.NewReaction(id)
	rxn.MetaID = attrValue(el, "metaid")
	rxn.Reversible = attrValue(el, "reversible")
	rxn.Fast = attrValue(el, "fast")

	reactionType, err := required(doc.ext, "reactionType")
	if err != nil {
		return rxn, err
	}
	rxn.ReactionType = content(reactionType)

	baseReactants, err := required(doc.ext, "baseReactants")
	if err != nil {
		return rxn, err
	}
	rxn.BaseReactants = extractBaseParticipants(baseReactants)

	baseProducts, err := required(doc.ext, "baseProducts")
	if err != nil {
		return rxn, err
	}
	rxn.BaseProducts = extractBaseParticipants(baseProducts)

	reactants, err := required(doc.sbml, "listOfReactants")
	if err != nil {
		return rxn, err
	}
	if err := extractParticipants(doc, reactants, parent, rxn.Reactants.Set); err != nil {
		return rxn, err
	}

	products, err := required(doc.sbml, "listOfProducts")
	if err != nil {
		return rxn, err
	}
	if err := extractParticipants(doc, products, parent, rxn.Products.Set); err != nil {
		return rxn, err
	}

	connectScheme, err := required(doc.ext, "connectScheme")
	if err != nil {
		return rxn, err
	}
	rxn.ConnectPolicy = attrValue(connectScheme, "connectPolicy")

	return rxn, nil
}

func extractBaseParticipants(list *etree.Element) []domain.BaseParticipant {
	out := make([]domain.BaseParticipant, 0, len(list.ChildElements()))
	for _, el := range list.ChildElements() {
		out = append(out, domain.BaseParticipant{
			Alias:     attrValue(el, "alias"),
			SpeciesID: attrValue(el, "species"),
		})
	}
	return out
}

// extractParticipants reads speciesReference entries. The alias comes from
// the nested extension element's text, not from an attribute.
func extractParticipants(
	doc *document,
	list *etree.Element,
	parent string,
	set func(string, domain.Participant) (domain.Participant, bool),
) error {
	for _, el := range list.ChildElements() {
		species := attrValue(el, "species")
		alias := descendant(el, doc.ext, "alias")
		if alias == nil || content(alias) == "" {
			return &domain.StructureError{Element: "alias", Parent: fmt.Sprintf("%s participant %s", parent, species)}
		}
		key := content(alias)
		set(key, domain.Participant{
			Alias:         key,
			SpeciesID:     species,
			Stoichiometry: attrValue(el, "stoichiometry"),
		})
	}
	return nil
}
