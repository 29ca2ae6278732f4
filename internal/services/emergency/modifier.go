package emergency

import (
	"strconv"

	"github.com/KirkDiggler/emergency-d20/internal/models"
)

// ExtractModifier returns the part of the roll total not contributed by d20 terms.
// A roll without any d20 contribution yields zero.
func ExtractModifier(roll *models.Roll) int {
	if roll == nil {
		return 0
	}

	d20Total := 0
	for _, term := range roll.Dice() {
		if term.Faces == 20 {
			d20Total += term.Total
		}
	}

	if d20Total == 0 {
		return 0
	}
	return roll.Total - d20Total
}

// RerollFormula builds a single d20 formula carrying the modifier
func RerollFormula(modifier int) string {
	switch {
	case modifier > 0:
		return "1d20+" + strconv.Itoa(modifier)
	case modifier < 0:
		return "1d20" + strconv.Itoa(modifier)
	default:
		return "1d20"
	}
}
