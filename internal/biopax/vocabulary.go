package biopax

// Vocabulary is a set-backed registry of interaction vocabulary terms.
// It remembers which terms already have an element in the document.
type Vocabulary struct {
	refs  map[string]string
	terms []string
}

// NewVocabulary creates an empty registry.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{refs: make(map[string]string)}
}

// Ensure returns the reference for term. created is true only on the
// first call for a term; callers emit the vocabulary element then.
func (v *Vocabulary) Ensure(term string) (ref string, created bool) {
	if ref, ok := v.refs[term]; ok {
		return ref, false
	}
	ref = InteractionVocabularyPrefix + term
	v.refs[term] = ref
	v.terms = append(v.terms, term)
	return ref, true
}

// Len returns the number of registered terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns registered terms in first-seen order.
func (v *Vocabulary) Terms() []string {
	return append([]string(nil), v.terms...)
}
