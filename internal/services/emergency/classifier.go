package emergency

import "github.com/KirkDiggler/emergency-d20/internal/models"

// IsD20Check reports whether the check's first roll contains a d20 term.
// Only the first roll is inspected.
func IsD20Check(check *models.CheckResult) bool {
	roll := check.PrimaryRoll()
	if roll == nil {
		return false
	}

	for _, term := range roll.Dice() {
		if term.Faces == 20 {
			return true
		}
	}
	return false
}
