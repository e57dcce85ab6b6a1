package view_test

import (
	"testing"

	"stock-terminal/core/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseViewMode(t *testing.T) {
	for _, m := range []view.ViewMode{view.ViewAll, view.ViewStored, view.ViewCraftable} {
		got, err := view.ParseViewMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := view.ParseViewMode("hidden")
	assert.ErrorIs(t, err, view.ErrUnknownViewMode)
}

func TestParseSearchMode(t *testing.T) {
	for m := view.SearchAuto; m <= view.SearchAssistManualKeep; m++ {
		got, err := view.ParseSearchMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := view.ParseSearchMode("")
	require.NoError(t, err)
	assert.Equal(t, view.SearchAuto, got)

	_, err = view.ParseSearchMode("psychic")
	assert.ErrorIs(t, err, view.ErrUnknownSearchMode)
}

func TestSearchMode_Flags(t *testing.T) {
	tests := []struct {
		mode    view.SearchMode
		forward bool
		keep    bool
	}{
		{view.SearchAuto, false, false},
		{view.SearchManual, false, false},
		{view.SearchAutoKeep, false, true},
		{view.SearchManualKeep, false, true},
		{view.SearchAssistAuto, true, false},
		{view.SearchAssistManual, true, false},
		{view.SearchAssistAutoKeep, true, true},
		{view.SearchAssistManualKeep, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.forward, tt.mode.ForwardsToAssist())
			assert.Equal(t, tt.keep, tt.mode.KeepsText())
		})
	}
}
