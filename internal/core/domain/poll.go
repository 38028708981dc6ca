package domain

import (
	"time"

	"github.com/google/uuid"
)

type Poll struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	CreatedBy   *string      `json:"created_by,omitempty"`
	Options     []PollOption `json:"options,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type PollOption struct {
	ID        uuid.UUID `json:"id"`
	PollID    uuid.UUID `json:"poll_id"`
	Text      string    `json:"text"`
	Votes     int64     `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnedBy reports whether userID created the poll. Anonymous polls have no owner.
func (p *Poll) OwnedBy(userID string) bool {
	return p.CreatedBy != nil && userID != "" && *p.CreatedBy == userID
}

func (p *Poll) TotalVotes() int64 {
	var total int64
	for _, o := range p.Options {
		total += o.Votes
	}
	return total
}
