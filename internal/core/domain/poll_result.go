package domain

import "github.com/google/uuid"

type PollOptionStats struct {
	VoteCount  int64
	Percentage float64
}

// OptionStats derives the share of the total each option holds.
func (p *Poll) OptionStats() map[uuid.UUID]PollOptionStats {
	total := p.TotalVotes()
	stats := make(map[uuid.UUID]PollOptionStats, len(p.Options))
	for _, o := range p.Options {
		percentage := 0.0
		if total > 0 {
			percentage = (float64(o.Votes) / float64(total)) * 100
		}
		stats[o.ID] = PollOptionStats{
			VoteCount:  o.Votes,
			Percentage: percentage,
		}
	}
	return stats
}
