package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polly/internal/core/domain"
	"github.com/vncsmyrnk/polly/internal/core/ports"
)

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

// Create inserts the poll and its options in one transaction, so a failed
// option insert never leaves a poll behind.
func (r *pollRepository) Create(ctx context.Context, poll *domain.Poll) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	poll.ID = uuid.New()
	queryPoll := `
		INSERT INTO polls (id, title, description, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, queryPoll, poll.ID, poll.Title, poll.Description, poll.CreatedBy).
		Scan(&poll.CreatedAt, &poll.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}

	queryOption := `
		INSERT INTO poll_options (id, poll_id, text, position, votes)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING created_at
	`
	stmt, err := tx.PrepareContext(ctx, queryOption)
	if err != nil {
		return fmt.Errorf("failed to prepare option statement: %w", err)
	}
	defer stmt.Close()

	for i := range poll.Options {
		opt := &poll.Options[i]
		opt.ID = uuid.New()
		opt.PollID = poll.ID
		opt.Votes = 0
		if err := stmt.QueryRowContext(ctx, opt.ID, opt.PollID, opt.Text, i).Scan(&opt.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	queryPoll := `
		SELECT id, title, description, created_by, created_at, updated_at
		FROM polls
		WHERE id = $1
	`

	var poll domain.Poll
	err := r.db.QueryRowContext(ctx, queryPoll, id).Scan(
		&poll.ID, &poll.Title, &poll.Description, &poll.CreatedBy, &poll.CreatedAt, &poll.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}

	options, err := r.fetchOptions(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	poll.Options = options

	return &poll, nil
}

func (r *pollRepository) Owner(ctx context.Context, id uuid.UUID) (*string, error) {
	var owner sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT created_by FROM polls WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll owner: %w", err)
	}
	if !owner.Valid {
		return nil, nil
	}
	return &owner.String, nil
}

func (r *pollRepository) List(ctx context.Context, limit, offset int) ([]*domain.Poll, error) {
	query := `
		SELECT id, title, description, created_by, created_at, updated_at
		FROM polls
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	defer rows.Close()

	return r.scanPolls(rows)
}

func (r *pollRepository) Search(ctx context.Context, limit, offset int, q string) ([]*domain.Poll, error) {
	query := `
		SELECT id, title, description, created_by, created_at, updated_at
		FROM polls
		WHERE title ILIKE $1 ESCAPE '\'
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, containsPattern(q), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search polls: %w", err)
	}
	defer rows.Close()

	return r.scanPolls(rows)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches q literally anywhere in the column.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

func (r *pollRepository) Update(ctx context.Context, id uuid.UUID, ownerID, title, description string) (bool, error) {
	query := `
		UPDATE polls
		SET title = $1, description = $2, updated_at = NOW()
		WHERE id = $3 AND created_by = $4
	`
	res, err := r.db.ExecContext(ctx, query, title, description, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to update poll: %w", err)
	}
	return affected(res)
}

func (r *pollRepository) Delete(ctx context.Context, id uuid.UUID, ownerID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM polls WHERE id = $1 AND created_by = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete poll: %w", err)
	}
	return affected(res)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

// scanPolls loads list rows only; options are fetched on the detail read.
func (r *pollRepository) scanPolls(rows *sql.Rows) ([]*domain.Poll, error) {
	var polls []*domain.Poll
	for rows.Next() {
		var poll domain.Poll
		if err := rows.Scan(&poll.ID, &poll.Title, &poll.Description, &poll.CreatedBy, &poll.CreatedAt, &poll.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, &poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polls: %w", err)
	}
	return polls, nil
}

func (r *pollRepository) fetchOptions(ctx context.Context, pollID uuid.UUID) ([]domain.PollOption, error) {
	queryOptions := `
		SELECT id, poll_id, text, votes, created_at
		FROM poll_options
		WHERE poll_id = $1
		ORDER BY position, created_at
	`
	rows, err := r.db.QueryContext(ctx, queryOptions, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get poll options: %w", err)
	}
	defer rows.Close()

	var options []domain.PollOption
	for rows.Next() {
		var opt domain.PollOption
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text, &opt.Votes, &opt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating options: %w", err)
	}
	return options, nil
}
