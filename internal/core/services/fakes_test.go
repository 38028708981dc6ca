package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polly/internal/core/domain"
)

type memoryPollRepo struct {
	mu    sync.Mutex
	polls map[uuid.UUID]*domain.Poll
	order []uuid.UUID

	createErr error
	ownerErr  error
	updateErr error
	deleteErr error
}

func newMemoryPollRepo() *memoryPollRepo {
	return &memoryPollRepo{polls: make(map[uuid.UUID]*domain.Poll)}
}

func (r *memoryPollRepo) seed(title string, createdBy *string, options ...string) *domain.Poll {
	p := &domain.Poll{Title: title, CreatedBy: createdBy}
	for _, o := range options {
		p.Options = append(p.Options, domain.PollOption{Text: o})
	}
	if err := r.Create(context.Background(), p); err != nil {
		panic(err)
	}
	return p
}

func (r *memoryPollRepo) Create(ctx context.Context, p *domain.Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	now := time.Now()
	p.ID = uuid.New()
	p.CreatedAt = now
	p.UpdatedAt = now
	for i := range p.Options {
		p.Options[i].ID = uuid.New()
		p.Options[i].PollID = p.ID
		p.Options[i].CreatedAt = now
	}
	stored := *p
	stored.Options = append([]domain.PollOption(nil), p.Options...)
	r.polls[p.ID] = &stored
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memoryPollRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	copyPoll := *p
	copyPoll.Options = append([]domain.PollOption(nil), p.Options...)
	return &copyPoll, nil
}

func (r *memoryPollRepo) Owner(ctx context.Context, id uuid.UUID) (*string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ownerErr != nil {
		return nil, r.ownerErr
	}
	p, ok := r.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	return p.CreatedBy, nil
}

func (r *memoryPollRepo) List(ctx context.Context, limit, offset int) ([]*domain.Poll, error) {
	return r.Search(ctx, limit, offset, "")
}

func (r *memoryPollRepo) Search(ctx context.Context, limit, offset int, query string) ([]*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []*domain.Poll
	for i := len(r.order) - 1; i >= 0; i-- {
		p, ok := r.polls[r.order[i]]
		if !ok {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(query)) {
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

func (r *memoryPollRepo) Update(ctx context.Context, id uuid.UUID, ownerID, title, description string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return false, r.updateErr
	}
	p, ok := r.polls[id]
	if !ok || p.CreatedBy == nil || *p.CreatedBy != ownerID {
		return false, nil
	}
	p.Title = title
	p.Description = description
	p.UpdatedAt = time.Now()
	return true, nil
}

func (r *memoryPollRepo) Delete(ctx context.Context, id uuid.UUID, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return false, r.deleteErr
	}
	p, ok := r.polls[id]
	if !ok || p.CreatedBy == nil || *p.CreatedBy != ownerID {
		return false, nil
	}
	delete(r.polls, id)
	return true, nil
}

func (r *memoryPollRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.polls)
}

type memoryVoteRepo struct {
	mu      sync.Mutex
	votes   map[uuid.UUID]map[string]uuid.UUID
	options map[uuid.UUID]uuid.UUID
	err     error
	calls   int
}

func newMemoryVoteRepo() *memoryVoteRepo {
	return &memoryVoteRepo{
		votes:   make(map[uuid.UUID]map[string]uuid.UUID),
		options: make(map[uuid.UUID]uuid.UUID),
	}
}

func (r *memoryVoteRepo) addOption(pollID, optionID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.options[optionID] = pollID
}

func (r *memoryVoteRepo) VoteForOption(ctx context.Context, optionID, pollID uuid.UUID, address string) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return uuid.Nil, r.err
	}
	if r.options[optionID] != pollID {
		return uuid.Nil, domain.ErrInvalidOption
	}
	if r.votes[pollID] == nil {
		r.votes[pollID] = make(map[string]uuid.UUID)
	}
	if _, ok := r.votes[pollID][address]; ok {
		return uuid.Nil, domain.ErrAlreadyVoted
	}
	id := uuid.New()
	r.votes[pollID][address] = id
	return id, nil
}

type recordingInvalidator struct {
	mu     sync.Mutex
	routes []string
}

func (r *recordingInvalidator) MarkStale(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

func (r *recordingInvalidator) stale() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.routes...)
}

var errStorage = errors.New("connection refused")

func strPtr(s string) *string {
	return &s
}
