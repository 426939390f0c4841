package ui

import (
	"github.com/hubastard/frameui/engine/cells"
	"github.com/hubastard/frameui/engine/toolkit"
)

// UnknownChoice is shown for a combo choice without a name.
const UnknownChoice = "Unknown"

// ComboBox draws a drop-down that sets cur to one of alternatives. names[i]
// labels alternatives[i]; a missing name shows UnknownChoice. The closed combo
// shows the name of the alternative equal to cur, or UnknownChoice when cur
// matches none of them.
func ComboBox(cur *cells.Int, alternatives []int32, names []string, label string) error {
	return draw("ui.ComboBox", func(r toolkit.Region) {
		r.ComboBox(label, selectedText(cur.Value, alternatives, names), func(list toolkit.Region) {
			for i, alt := range alternatives {
				list.SelectableValue(&cur.Value, alt, choiceName(names, i))
			}
		})
	})
}

func selectedText(v int32, alternatives []int32, names []string) string {
	for i, alt := range alternatives {
		if alt == v {
			return choiceName(names, i)
		}
	}
	return UnknownChoice
}

func choiceName(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return UnknownChoice
}
