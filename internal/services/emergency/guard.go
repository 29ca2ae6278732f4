package emergency

import "github.com/KirkDiggler/emergency-d20/internal/models"

// GuardDecision is the outcome of the usage guard
type GuardDecision string

const (
	GuardProceed         GuardDecision = "proceed"
	GuardSkipIsEmergency GuardDecision = "skip_is_emergency"
	GuardSkipUsed        GuardDecision = "skip_used"
)

// EvaluateGuard blocks rerolling a reroll and reusing a check that was already rerolled
func EvaluateGuard(check *models.CheckResult) GuardDecision {
	if check == nil {
		return GuardSkipUsed
	}
	if check.Flags.IsSet(FlagScope, FlagIsEmergency) {
		return GuardSkipIsEmergency
	}
	if check.Flags.IsSet(FlagScope, FlagUsed) {
		return GuardSkipUsed
	}
	return GuardProceed
}

func (d GuardDecision) skipReason() SkipReason {
	switch d {
	case GuardSkipIsEmergency:
		return SkipIsEmergency
	case GuardSkipUsed:
		return SkipUsed
	default:
		return SkipNone
	}
}
