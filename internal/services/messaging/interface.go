package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/emergency-d20/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetNoticeMessage returns the text of a user-visible notice
	GetNoticeMessage(ctx context.Context, input *GetNoticeMessageInput) (*GetNoticeMessageOutput, error)

	// GetCheckHeadline returns a headline for a rendered check result
	GetCheckHeadline(ctx context.Context, input *GetCheckHeadlineInput) (*GetCheckHeadlineOutput, error)
}
