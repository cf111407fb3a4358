package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sbml2biopax/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sbml2biopax/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateWatching, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_SetState(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetState(StateConverting)

	assert.Equal(t, StateConverting, bar.State())
}

func TestStatusBar_View_Watching(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetCounts(3, 1)

	view := bar.View()

	assert.Contains(t, view, "Watching 3 runs, 1 failed")
	assert.Contains(t, view, "r: convert now")
	assert.Contains(t, view, "q: quit")
}

func TestStatusBar_View_Converting(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateConverting)

	assert.Contains(t, bar.View(), "Converting...")
}

func TestStatusBar_View_Error(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("watch failed")

	assert.Contains(t, bar.View(), "Error: watch failed")
}

func TestStatusBar_View_ErrorWithoutMessage(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)

	assert.Contains(t, bar.View(), "Error")
}

func TestStatusBar_View_Stopped(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateStopped)

	assert.Contains(t, bar.View(), "Stopped 0 runs, 0 failed")
}

func TestStatusBar_SetWidth(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetWidth(120)

	assert.Equal(t, 120, bar.Width())
}
