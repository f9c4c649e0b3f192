package model

import "strings"

// SortCriterion selects how a view of the list is ordered.
type SortCriterion string

const (
	SortInput       SortCriterion = "input"
	SortDescription SortCriterion = "description"
	SortPacked      SortCriterion = "packed"
)

var sortCycle = []SortCriterion{SortInput, SortDescription, SortPacked}

// ParseSort maps a user-supplied name to a criterion. Unknown names yield SortInput.
func ParseSort(s string) SortCriterion {
	switch c := SortCriterion(strings.ToLower(strings.TrimSpace(s))); c {
	case SortDescription, SortPacked:
		return c
	default:
		return SortInput
	}
}

// Next returns the criterion after c in the input → description → packed cycle.
func (c SortCriterion) Next() SortCriterion {
	for i, s := range sortCycle {
		if s == c {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return SortDescription
}

// Label is the human-facing name shown in front ends.
func (c SortCriterion) Label() string {
	switch c {
	case SortDescription:
		return "Sort by description"
	case SortPacked:
		return "Sort by packed status"
	default:
		return "Sort by input order"
	}
}
