package models

// TermKind identifies the type of a roll term
type TermKind string

const (
	// TermKindDie is a group of dice such as 2d6
	TermKindDie TermKind = "die"

	// TermKindNumeric is a flat number such as +3
	TermKindNumeric TermKind = "numeric"
)

// Term is one evaluated part of a roll formula
type Term struct {
	// Kind is the type of term
	Kind TermKind

	// Operator is the sign applied to the term, "+" or "-"
	Operator string

	// Count is the number of dice rolled, zero for numeric terms
	Count int

	// Faces is the number of faces on each die, zero for numeric terms
	Faces int

	// Results contains the value of each die rolled
	Results []int

	// Number is the flat value of a numeric term
	Number int

	// Total is the unsigned value of the term
	Total int
}

// Roll is an evaluated dice formula
type Roll struct {
	// Formula is the expression that was evaluated
	Formula string

	// Flavor is an optional label for the roll
	Flavor string

	// Terms contains the evaluated terms in formula order
	Terms []*Term

	// Total is the final signed total of the roll
	Total int
}

// Dice returns the die terms of the roll
func (r *Roll) Dice() []*Term {
	if r == nil {
		return nil
	}
	dice := make([]*Term, 0, len(r.Terms))
	for _, term := range r.Terms {
		if term.Kind == TermKindDie {
			dice = append(dice, term)
		}
	}
	return dice
}
