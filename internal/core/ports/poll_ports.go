package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polly/internal/core/domain"
)

type PollRepository interface {
	// Create stores the poll and its options atomically, filling in ids and timestamps.
	Create(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	// Owner returns the creator of a poll, nil for anonymous polls.
	Owner(ctx context.Context, id uuid.UUID) (*string, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Poll, error)
	Search(ctx context.Context, limit, offset int, query string) ([]*domain.Poll, error)
	// Update and Delete are scoped by both id and creator and report whether a row matched.
	Update(ctx context.Context, id uuid.UUID, ownerID, title, description string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID string) (bool, error)
}

type CreatePollInput struct {
	Title       string
	Description string
	Options     []string
}

type UpdatePollInput struct {
	ID          string
	Title       string
	Description string
}

type DeletePollInput struct {
	ID string
}

type ListPollsInput struct {
	Page  int
	Query string
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*domain.Poll, error)
	Update(ctx context.Context, input UpdatePollInput) error
	Delete(ctx context.Context, input DeletePollInput) error
	GetPoll(ctx context.Context, id string) (*domain.Poll, error)
	ListPolls(ctx context.Context, input ListPollsInput) ([]*domain.Poll, error)
}
