package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polly/internal/core/domain"
	"github.com/vncsmyrnk/polly/internal/core/forms"
	"github.com/vncsmyrnk/polly/internal/core/ports"
)

const pageSize = 10

const (
	msgCreateFailed = "Failed to create poll. Please try again."
	msgUpdateFailed = "Failed to update poll"
	msgDeleteFailed = "Failed to delete poll"
	msgLoadFailed   = "Failed to load polls"
)

type pollService struct {
	repo        ports.PollRepository
	invalidator ports.ViewInvalidator
	logger      *slog.Logger
}

func NewPollService(repo ports.PollRepository, invalidator ports.ViewInvalidator, logger *slog.Logger) ports.PollService {
	if logger == nil {
		logger = slog.Default()
	}
	return &pollService{
		repo:        repo,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	input, err := forms.NormalizePoll(input)
	if err != nil {
		return nil, err
	}

	poll := &domain.Poll{
		Title:       input.Title,
		Description: input.Description,
	}
	if user := CurrentUser(ctx); user != nil {
		creator := user.ID
		poll.CreatedBy = &creator
	}
	for _, text := range input.Options {
		poll.Options = append(poll.Options, domain.PollOption{Text: text})
	}

	if err := s.repo.Create(ctx, poll); err != nil {
		s.logger.ErrorContext(ctx, "create poll", "error", err)
		return nil, domain.NewStorageError(msgCreateFailed, err)
	}

	s.invalidator.MarkStale(ports.PollsRoute())
	return poll, nil
}

func (s *pollService) Update(ctx context.Context, input ports.UpdatePollInput) error {
	if input.ID == "" {
		return domain.ErrMissingPollID
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.ErrTitleRequired
	}
	user, err := RequireUser(ctx)
	if err != nil {
		return err
	}

	pollID, err := s.authorizeOwner(ctx, input.ID, user, msgUpdateFailed)
	if err != nil {
		return err
	}

	matched, err := s.repo.Update(ctx, pollID, user.ID, title, strings.TrimSpace(input.Description))
	if err != nil {
		s.logger.ErrorContext(ctx, "update poll", "poll_id", pollID, "error", err)
		return domain.NewStorageError(msgUpdateFailed, err)
	}
	if !matched {
		return domain.ErrPollNotFound
	}

	s.invalidator.MarkStale(ports.PollsRoute())
	s.invalidator.MarkStale(ports.PollRoute(pollID.String()))
	return nil
}

func (s *pollService) Delete(ctx context.Context, input ports.DeletePollInput) error {
	if input.ID == "" {
		return domain.ErrMissingPollID
	}
	user, err := RequireUser(ctx)
	if err != nil {
		return err
	}

	pollID, err := s.authorizeOwner(ctx, input.ID, user, msgDeleteFailed)
	if err != nil {
		return err
	}

	matched, err := s.repo.Delete(ctx, pollID, user.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete poll", "poll_id", pollID, "error", err)
		return domain.NewStorageError(msgDeleteFailed, err)
	}
	if !matched {
		return domain.ErrPollNotFound
	}

	s.invalidator.MarkStale(ports.PollsRoute())
	s.invalidator.MarkStale(ports.PollRoute(pollID.String()))
	return nil
}

// authorizeOwner separates "no such poll" from "not yours" before any write.
func (s *pollService) authorizeOwner(ctx context.Context, rawID string, user *domain.User, failMsg string) (uuid.UUID, error) {
	pollID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidPollID
	}

	owner, err := s.repo.Owner(ctx, pollID)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			return uuid.Nil, domain.ErrPollNotFound
		}
		s.logger.ErrorContext(ctx, "load poll owner", "poll_id", pollID, "error", err)
		return uuid.Nil, domain.NewStorageError(failMsg, err)
	}
	if owner == nil || *owner != user.ID {
		s.logger.WarnContext(ctx, "poll ownership mismatch", "poll_id", pollID, "user_id", user.ID)
		return uuid.Nil, domain.ErrPermissionDenied
	}
	return pollID, nil
}

func (s *pollService) GetPoll(ctx context.Context, id string) (*domain.Poll, error) {
	pollID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidPollID
	}

	poll, err := s.repo.GetByID(ctx, pollID)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "get poll", "poll_id", pollID, "error", err)
		return nil, domain.NewStorageError(msgLoadFailed, err)
	}
	return poll, nil
}

func (s *pollService) ListPolls(ctx context.Context, input ports.ListPollsInput) ([]*domain.Poll, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	var (
		polls []*domain.Poll
		err   error
	)
	if q := strings.TrimSpace(input.Query); q != "" {
		polls, err = s.repo.Search(ctx, pageSize, offset, q)
	} else {
		polls, err = s.repo.List(ctx, pageSize, offset)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "list polls", "page", page, "error", err)
		return nil, domain.NewStorageError(msgLoadFailed, err)
	}
	return polls, nil
}
