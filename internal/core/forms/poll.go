// Package forms turns raw form submissions into validated action inputs.
package forms

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/vncsmyrnk/polly/internal/core/domain"
	"github.com/vncsmyrnk/polly/internal/core/ports"
)

const (
	optionsField      = "options"
	optionFieldPrefix = "option-"
)

// ParsePoll reads a poll creation form. Options come from the repeated
// "options" field first, then from any "option-<n>" fields ordered by n.
func ParsePoll(values url.Values) (ports.CreatePollInput, error) {
	input := ports.CreatePollInput{
		Title:       values.Get("title"),
		Description: values.Get("description"),
	}

	input.Options = append(input.Options, values[optionsField]...)
	for _, key := range optionKeys(values) {
		input.Options = append(input.Options, values[key]...)
	}

	return NormalizePoll(input)
}

// NormalizePoll trims every field, drops blank options and enforces the
// title and minimum option rules.
func NormalizePoll(input ports.CreatePollInput) (ports.CreatePollInput, error) {
	out := ports.CreatePollInput{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
	}
	if out.Title == "" {
		return ports.CreatePollInput{}, domain.ErrTitleRequired
	}

	for _, text := range input.Options {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		out.Options = append(out.Options, text)
	}
	if len(out.Options) < 2 {
		return ports.CreatePollInput{}, domain.ErrTooFewOptions
	}

	return out, nil
}

func optionKeys(values url.Values) []string {
	var keys []string
	for key := range values {
		if strings.HasPrefix(key, optionFieldPrefix) {
			keys = append(keys, key)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		a, aErr := strconv.Atoi(strings.TrimPrefix(keys[i], optionFieldPrefix))
		b, bErr := strconv.Atoi(strings.TrimPrefix(keys[j], optionFieldPrefix))
		switch {
		case aErr == nil && bErr == nil:
			if a != b {
				return a < b
			}
			return keys[i] < keys[j]
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
