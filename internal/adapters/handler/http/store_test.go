package http

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polly/internal/core/domain"
)

// memoryStore backs both repositories so votes show up in poll results.
type memoryStore struct {
	mu    sync.Mutex
	polls map[uuid.UUID]*domain.Poll
	order []uuid.UUID
	votes map[uuid.UUID]map[string]bool

	failOptionInsert bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		polls: make(map[uuid.UUID]*domain.Poll),
		votes: make(map[uuid.UUID]map[string]bool),
	}
}

func (s *memoryStore) Create(ctx context.Context, p *domain.Poll) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOptionInsert {
		return errors.New("insert poll_options: connection reset")
	}
	now := time.Now()
	p.ID = uuid.New()
	p.CreatedAt, p.UpdatedAt = now, now
	for i := range p.Options {
		p.Options[i].ID = uuid.New()
		p.Options[i].PollID = p.ID
	}
	stored := *p
	stored.Options = append([]domain.PollOption(nil), p.Options...)
	s.polls[p.ID] = &stored
	s.order = append(s.order, p.ID)
	return nil
}

func (s *memoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	copyPoll := *p
	copyPoll.Options = append([]domain.PollOption(nil), p.Options...)
	return &copyPoll, nil
}

func (s *memoryStore) Owner(ctx context.Context, id uuid.UUID) (*string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	return p.CreatedBy, nil
}

func (s *memoryStore) List(ctx context.Context, limit, offset int) ([]*domain.Poll, error) {
	return s.Search(ctx, limit, offset, "")
}

func (s *memoryStore) Search(ctx context.Context, limit, offset int, query string) ([]*domain.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []*domain.Poll
	for i := len(s.order) - 1; i >= 0; i-- {
		p, ok := s.polls[s.order[i]]
		if !ok || !strings.Contains(strings.ToLower(p.Title), strings.ToLower(query)) {
			continue
		}
		copyPoll := *p
		res = append(res, &copyPoll)
	}
	if offset >= len(res) {
		return nil, nil
	}
	res = res[offset:]
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (s *memoryStore) Update(ctx context.Context, id uuid.UUID, ownerID, title, description string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.polls[id]
	if !ok || p.CreatedBy == nil || *p.CreatedBy != ownerID {
		return false, nil
	}
	p.Title, p.Description = title, description
	return true, nil
}

func (s *memoryStore) Delete(ctx context.Context, id uuid.UUID, ownerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.polls[id]
	if !ok || p.CreatedBy == nil || *p.CreatedBy != ownerID {
		return false, nil
	}
	delete(s.polls, id)
	return true, nil
}

func (s *memoryStore) VoteForOption(ctx context.Context, optionID, pollID uuid.UUID, address string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.polls[pollID]
	if !ok {
		return uuid.Nil, domain.ErrInvalidOption
	}
	idx := -1
	for i, o := range p.Options {
		if o.ID == optionID {
			idx = i
		}
	}
	if idx < 0 {
		return uuid.Nil, domain.ErrInvalidOption
	}
	if s.votes[pollID] == nil {
		s.votes[pollID] = make(map[string]bool)
	}
	if s.votes[pollID][address] {
		return uuid.Nil, domain.ErrAlreadyVoted
	}
	s.votes[pollID][address] = true
	p.Options[idx].Votes++
	return uuid.New(), nil
}

func (s *memoryStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.polls)
}

type tokenVerifier map[string]*domain.User

func (v tokenVerifier) Verify(ctx context.Context, token string) (*domain.User, error) {
	if u, ok := v[token]; ok {
		return u, nil
	}
	return nil, errors.New("unknown token")
}
