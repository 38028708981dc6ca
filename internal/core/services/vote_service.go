package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polly/internal/core/domain"
	"github.com/vncsmyrnk/polly/internal/core/ports"
)

const msgVoteFailed = "Failed to register vote. Please try again."

type voteService struct {
	voteRepo    ports.VoteRepository
	invalidator ports.ViewInvalidator
	logger      *slog.Logger
}

func NewVoteService(voteRepo ports.VoteRepository, invalidator ports.ViewInvalidator, logger *slog.Logger) ports.VoteService {
	if logger == nil {
		logger = slog.Default()
	}
	return &voteService{
		voteRepo:    voteRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// CastVote records one ballot. Anonymous voters are allowed; whether a voter
// may vote again is decided by the vote_for_option procedure.
func (s *voteService) CastVote(ctx context.Context, input ports.VoteInput) domain.VoteResult {
	pollID, err := uuid.Parse(input.PollID)
	if err != nil {
		return domain.VoteFailed(domain.ErrInvalidVote)
	}
	optionID, err := uuid.Parse(input.OptionID)
	if err != nil {
		return domain.VoteFailed(domain.ErrInvalidVote)
	}

	voteID, err := s.voteRepo.VoteForOption(ctx, optionID, pollID, input.Address)
	if err != nil {
		s.logger.ErrorContext(ctx, "vote for option",
			"poll_id", pollID,
			"option_id", optionID,
			"address", input.Address,
			"error", err,
		)
		switch {
		case errors.Is(err, domain.ErrAlreadyVoted):
			return domain.VoteFailed(domain.ErrAlreadyVoted)
		case errors.Is(err, domain.ErrInvalidOption):
			return domain.VoteFailed(domain.ErrInvalidOption)
		default:
			return domain.VoteFailed(domain.NewStorageError(msgVoteFailed, err))
		}
	}

	s.invalidator.MarkStale(ports.PollRoute(pollID.String()))
	return domain.VoteSucceeded(voteID)
}
