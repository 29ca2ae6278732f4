package check

import "github.com/KirkDiggler/emergency-d20/internal/models"

type SaveCheckInput struct {
	Check *models.CheckResult
}

type GetCheckInput struct {
	CheckID string
}

type SetFlagInput struct {
	CheckID string
	Scope   string
	Key     string
	Value   string
}

type SetMessageIDInput struct {
	CheckID   string
	MessageID string
}
