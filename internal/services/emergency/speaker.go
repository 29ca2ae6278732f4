package emergency

import (
	"context"

	actorRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/actor"
	tokenRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/token"
)

// ResolveSpeaker maps a check's speaker to an actor. The speaker's actor is
// preferred, then the actor behind the speaker's token, then the actor behind
// the viewer's only selected token.
func (s *service) ResolveSpeaker(ctx context.Context, input *ResolveSpeakerInput) *SpeakerResolution {
	if input == nil {
		return &SpeakerResolution{Source: Unresolved}
	}

	if input.Speaker.ActorID != "" {
		actor, err := s.actorRepo.GetActor(ctx, &actorRepo.GetActorInput{
			ActorID: input.Speaker.ActorID,
		})
		if err == nil {
			return &SpeakerResolution{Actor: actor, Source: ResolvedByActor}
		}
		s.logger.Debug("speaker actor not resolvable", "actor_id", input.Speaker.ActorID, "error", err)
	}

	if input.Speaker.TokenID != "" {
		token, err := s.tokenRepo.GetToken(ctx, &tokenRepo.GetTokenInput{
			TokenID: input.Speaker.TokenID,
		})
		if err == nil && token.ActorID != "" {
			actor, err := s.actorRepo.GetActor(ctx, &actorRepo.GetActorInput{
				ActorID: token.ActorID,
			})
			if err == nil {
				return &SpeakerResolution{Actor: actor, Source: ResolvedByToken}
			}
		}
		s.logger.Debug("speaker token not resolvable", "token_id", input.Speaker.TokenID)
	}

	if input.ViewerID != "" {
		selected, err := s.tokenRepo.GetSelectedTokens(ctx, &tokenRepo.GetSelectedTokensInput{
			UserID: input.ViewerID,
		})
		if err == nil && len(selected.Tokens) == 1 && selected.Tokens[0].ActorID != "" {
			actor, err := s.actorRepo.GetActor(ctx, &actorRepo.GetActorInput{
				ActorID: selected.Tokens[0].ActorID,
			})
			if err == nil {
				return &SpeakerResolution{Actor: actor, Source: ResolvedBySelection}
			}
		}
	}

	return &SpeakerResolution{Source: Unresolved}
}
