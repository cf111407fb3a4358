package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountNoun(t *testing.T) {
	tests := []struct {
		n        int
		noun     string
		expected string
	}{
		{n: 1, noun: "protein", expected: "1 protein"},
		{n: 0, noun: "protein", expected: "0 proteins"},
		{n: 2, noun: "stoichiometry", expected: "2 stoichiometries"},
		{n: 3, noun: "interaction vocabulary", expected: "3 interaction vocabularies"},
		{n: 2, noun: "species", expected: "2 species"},
		{n: 2, noun: "alias", expected: "2 aliases"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, countNoun(tt.n, tt.noun))
		})
	}
}

func TestNewStyles_PlainWhenNotTerminal(t *testing.T) {
	buf := new(bytes.Buffer)
	assert.False(t, isTerminal(buf))

	st := newStyles(buf)
	assert.Equal(t, "Converted", st.success.Render("Converted"))
	assert.Equal(t, "model.xml", st.title.Render("model.xml"))
}
