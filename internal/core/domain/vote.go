package domain

import "github.com/google/uuid"

// VoteResult is what a vote action hands back to the UI. It is never
// replaced by an error: failures are carried inside it.
type VoteResult struct {
	Success bool   `json:"success"`
	VoteID  string `json:"voteId,omitempty"`
	Error   string `json:"error,omitempty"`

	err error
}

func VoteSucceeded(voteID uuid.UUID) VoteResult {
	return VoteResult{Success: true, VoteID: voteID.String()}
}

func VoteFailed(err error) VoteResult {
	return VoteResult{Success: false, Error: err.Error(), err: err}
}

// Err returns the classified failure behind an unsuccessful result.
func (r VoteResult) Err() error {
	return r.err
}
