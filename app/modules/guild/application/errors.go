package guildservice

import "errors"

var (
	// ErrInvalidGuildID indicates a request with an empty guild identifier.
	ErrInvalidGuildID = errors.New("invalid guild ID")

	// ErrGuildNotConfigured indicates the guild exists but is missing the
	// queue/match categories or the scorer role required to run matches.
	ErrGuildNotConfigured = errors.New("guild not configured")
)
