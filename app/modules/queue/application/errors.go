package queueservice

import "errors"

var (
	// ErrNotQueueable indicates the user cannot enter the queue: banned,
	// already waiting, or already playing an ongoing match in the guild.
	ErrNotQueueable = errors.New("user cannot be queued")

	// ErrNotQueued indicates a dequeue for a user who is already locked
	// into a formed match.
	ErrNotQueued = errors.New("user is not waiting in the queue")

	// ErrInsufficientPlayers indicates formation was attempted below the
	// configured match size. Callers simply wait for more players.
	ErrInsufficientPlayers = errors.New("not enough players in the queue")
)
