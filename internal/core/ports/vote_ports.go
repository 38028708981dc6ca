package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polly/internal/core/domain"
)

type VoteRepository interface {
	// VoteForOption delegates to the vote_for_option procedure, which owns
	// the increment and the one-vote-per-address rule.
	VoteForOption(ctx context.Context, optionID, pollID uuid.UUID, address string) (uuid.UUID, error)
}

type VoteInput struct {
	PollID   string
	OptionID string
	Address  string
}

type VoteService interface {
	CastVote(ctx context.Context, input VoteInput) domain.VoteResult
}
