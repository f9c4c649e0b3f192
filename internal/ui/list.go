package ui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/packlist/internal/model"
)

const maxDescriptionWidth = 60

// ItemText is the unstyled "Socks - 12" label of an item.
func ItemText(it model.Item) string {
	return fmt.Sprintf("%s - %d", ansi.Truncate(it.Description, maxDescriptionWidth, "…"), it.Quantity)
}

// ItemLine renders a numbered list row. index is 1-based.
func ItemLine(index int, it model.Item) string {
	t := Current()
	box, text := t.Muted.Render(t.BoxUnchecked), ItemText(it)
	if it.Packed {
		box, text = t.Success.Render(t.BoxChecked), t.Done.Render(text)
	}
	return fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("%2d.", index)), box, text)
}

// Header is the title row with live counts.
func Header(st model.Stats) string {
	t := Current()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Packing list"),
		t.Success.Render(t.SymDone), st.PackedCount,
		t.Pending.Render(t.SymPending), st.Pending(),
		t.Accent.Render("Total"), st.Total,
	)
}

// Footer is the stats sentence.
func Footer(st model.Stats) string {
	t := Current()
	if st.Total > 0 && st.PackedPercentage == 100 {
		return t.Success.Render(st.Summary())
	}
	return t.Muted.Render(st.Summary())
}

// Lines renders items in the given order. Row numbers follow that order.
func Lines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{Current().Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		out = append(out, ItemLine(i+1, it))
	}
	return out
}

// GroupLines renders pending items, then packed ones, each numbered within
// its group.
func GroupLines(items []model.Item) []string {
	var pend, packed []model.Item
	for _, it := range items {
		if it.Packed {
			packed = append(packed, it)
		} else {
			pend = append(pend, it)
		}
	}
	t := Current()
	group := func(title string, items []model.Item) []string {
		lines := []string{t.Accent.Render(title)}
		if len(items) == 0 {
			return append(lines, t.Muted.Render("(none)"))
		}
		return append(lines, Lines(items)...)
	}
	lines := group("Pending", pend)
	lines = append(lines, "")
	return append(lines, group("Packed", packed)...)
}

// Summary is the full framed listing used by the non-interactive commands.
func Summary(items []model.Item, st model.Stats, sort model.SortCriterion, grouped bool) string {
	t := Current()
	lines := []string{
		Header(st),
		t.Muted.Render(ProgressBar(st.PackedCount, st.Total, 28)),
		t.Muted.Render(sort.Label()),
		"",
	}
	if grouped {
		lines = append(lines, GroupLines(items)...)
	} else {
		lines = append(lines, Lines(items)...)
	}
	lines = append(lines, "", Footer(st))
	return Panel(lines)
}
