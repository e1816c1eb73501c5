// internal/game/evaluate.go
//
// Guess evaluation. Each attribute is classified in priority order:
//   1. exact:   native equality (numbers numerically, flags as booleans,
//               strings byte-for-byte).
//   2. partial: both values are non-empty strings equal under case folding.
//   3. none:    anything else.
// Numbers and booleans can never be partial.

package game

import (
	"github.com/robalobadob/bossdle/internal/catalog"
)

// Evaluate classifies guess against target over Attributes, in order.
func Evaluate(guess, target catalog.Entry) []Mark {
	out := make([]Mark, len(Attributes))
	for i, a := range Attributes {
		out[i] = markAttr(a, guess, target)
	}
	return out
}

// EvaluateRow is Evaluate plus display strings for each cell.
func EvaluateRow(guess, target catalog.Entry) Row {
	cells := make([]Cell, len(Attributes))
	for i, a := range Attributes {
		cells[i] = Cell{Attribute: a, Display: Display(guess, a), Mark: markAttr(a, guess, target)}
	}
	return Row{Name: guess.Name, Cells: cells}
}

// Display renders an attribute of e for the grid. Flags render as Yes/No.
func Display(e catalog.Entry, a Attribute) string {
	switch a {
	case AttrName:
		return e.Name
	case AttrRegion:
		return e.Region
	case AttrCategory:
		return e.Category
	case AttrDamage:
		return e.Damage.String()
	case AttrRemembrance:
		if e.Remembrance {
			return "Yes"
		}
		return "No"
	}
	return ""
}

func markAttr(a Attribute, g, t catalog.Entry) Mark {
	switch a {
	case AttrName:
		return markString(g.Name, t.Name)
	case AttrRegion:
		return markString(g.Region, t.Region)
	case AttrCategory:
		return markString(g.Category, t.Category)
	case AttrDamage:
		return markValue(g.Damage, t.Damage)
	case AttrRemembrance:
		if g.Remembrance == t.Remembrance {
			return MarkExact
		}
	}
	return MarkNone
}

func markString(g, t string) Mark {
	if g == t {
		return MarkExact
	}
	if g != "" && t != "" && catalog.Fold(g) == catalog.Fold(t) {
		return MarkPartial
	}
	return MarkNone
}

func markValue(g, t catalog.Value) Mark {
	if g.Equal(t) {
		return MarkExact
	}
	if g.IsNumber() || t.IsNumber() {
		return MarkNone
	}
	return markString(g.Str, t.Str)
}
