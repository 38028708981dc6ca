package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vncsmyrnk/polly/internal/core/domain"
	"github.com/vncsmyrnk/polly/internal/core/ports"
)

const (
	codeUniqueViolation     pq.ErrorCode = "23505"
	codeForeignKeyViolation pq.ErrorCode = "23503"
	codeNoDataFound         pq.ErrorCode = "P0002"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) VoteForOption(ctx context.Context, optionID, pollID uuid.UUID, address string) (uuid.UUID, error) {
	var voteID uuid.UUID
	err := r.db.QueryRowContext(ctx, `SELECT vote_for_option($1, $2, $3)`, optionID, pollID, address).Scan(&voteID)
	if err != nil {
		return uuid.Nil, classifyVoteError(err)
	}
	return voteID, nil
}

func classifyVoteError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrAlreadyVoted, pqErr.Message)
		case codeNoDataFound, codeForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrInvalidOption, pqErr.Message)
		}
	}
	return fmt.Errorf("failed to vote for option: %w", err)
}
