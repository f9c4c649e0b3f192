package model

import "fmt"

// Stats is the derived summary of a list.
type Stats struct {
	Total            int `json:"total"`
	PackedCount      int `json:"packed_count"`
	PackedPercentage int `json:"packed_percentage"`
}

// Pending is the number of items not yet packed.
func (s Stats) Pending() int { return s.Total - s.PackedCount }

// Summary is the footer sentence shown under the list.
func (s Stats) Summary() string {
	switch {
	case s.Total == 0:
		return "Start adding some items to your packing list 🚀"
	case s.PackedPercentage == 100:
		return "You got everything! Ready to go ✈️"
	}
	return fmt.Sprintf("You have %d items on your list, and you already packed %d (%d%%)",
		s.Total, s.PackedCount, s.PackedPercentage)
}
