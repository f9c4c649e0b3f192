package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewItem_TrimsAndAssignsID(t *testing.T) {
	a := NewItem("  Socks ", 12, false)
	b := NewItem("Socks", 12, false)

	require.Equal(t, "Socks", a.Description)
	require.Equal(t, 12, a.Quantity)
	require.False(t, a.Packed)
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID, "expected distinct ids")
}

func TestParseSort(t *testing.T) {
	tests := map[string]SortCriterion{
		"":            SortInput,
		"input":       SortInput,
		"description": SortDescription,
		" Packed ":    SortPacked,
		"quantity":    SortInput,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseSort(in), "ParseSort(%q)", in)
	}
}

func TestSortCriterion_Next(t *testing.T) {
	require.Equal(t, SortDescription, SortInput.Next())
	require.Equal(t, SortPacked, SortDescription.Next())
	require.Equal(t, SortInput, SortPacked.Next())
	require.Equal(t, SortDescription, SortCriterion("bogus").Next())
}

func TestStats_Summary(t *testing.T) {
	require.Equal(t, "Start adding some items to your packing list 🚀", Stats{}.Summary())
	require.Equal(t, "You got everything! Ready to go ✈️",
		Stats{Total: 2, PackedCount: 2, PackedPercentage: 100}.Summary())
	require.Equal(t, "You have 3 items on your list, and you already packed 1 (33%)",
		Stats{Total: 3, PackedCount: 1, PackedPercentage: 33}.Summary())
	require.Equal(t, 2, Stats{Total: 3, PackedCount: 1}.Pending())
}
