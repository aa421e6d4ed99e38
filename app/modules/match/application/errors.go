package matchservice

import "errors"

var (
	// ErrNotScorer indicates the submitter does not hold the guild's
	// scorer role.
	ErrNotScorer = errors.New("submitter lacks the scorer role")

	// ErrInvalidScore indicates a negative team score.
	ErrInvalidScore = errors.New("scores must be non-negative")
)
