// Package guildlock provides an arena of per-guild mutexes. Mutating
// operations (pool drain plus match creation, score finalization) serialize
// per guild; different guilds never contend with each other.
package guildlock

import (
	"sync"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// Arena hands out one mutex per guild. Locks are created on first use and
// kept for the life of the process; a guild entry is a single mutex, so the
// arena stays small even with many guilds.
type Arena struct {
	mu    sync.Mutex
	locks map[sharedtypes.GuildID]*sync.Mutex
}

// NewArena creates an empty lock arena.
func NewArena() *Arena {
	return &Arena{
		locks: make(map[sharedtypes.GuildID]*sync.Mutex),
	}
}

// Lock acquires the guild's mutex, creating it on first use, and returns the
// unlock function.
func (a *Arena) Lock(guildID sharedtypes.GuildID) func() {
	a.mu.Lock()
	lock, ok := a.locks[guildID]
	if !ok {
		lock = &sync.Mutex{}
		a.locks[guildID] = lock
	}
	a.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
