package queueservice

import (
	"sync"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// WaitingPool holds the players waiting for a match, per guild. Queue
// membership is deliberately ephemeral: the schema has no queue table, so a
// restart empties every pool. Insertion order is preserved for FIFO draining
// and for deterministic tie-breaking in team formation.
type WaitingPool struct {
	mu     sync.Mutex
	guilds map[sharedtypes.GuildID]*guildPool
}

type guildPool struct {
	order   []sharedtypes.UserID
	members map[sharedtypes.UserID]struct{}
}

// NewWaitingPool creates an empty pool.
func NewWaitingPool() *WaitingPool {
	return &WaitingPool{
		guilds: make(map[sharedtypes.GuildID]*guildPool),
	}
}

func (p *WaitingPool) guild(guildID sharedtypes.GuildID) *guildPool {
	gp, ok := p.guilds[guildID]
	if !ok {
		gp = &guildPool{members: make(map[sharedtypes.UserID]struct{})}
		p.guilds[guildID] = gp
	}
	return gp
}

// Add appends the user to the guild's pool. It reports false if the user is
// already waiting.
func (p *WaitingPool) Add(guildID sharedtypes.GuildID, userID sharedtypes.UserID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	gp := p.guild(guildID)
	if _, ok := gp.members[userID]; ok {
		return false
	}
	gp.members[userID] = struct{}{}
	gp.order = append(gp.order, userID)
	return true
}

// Remove takes the user out of the guild's pool. It reports false if the
// user was not waiting.
func (p *WaitingPool) Remove(guildID sharedtypes.GuildID, userID sharedtypes.UserID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	gp, ok := p.guilds[guildID]
	if !ok {
		return false
	}
	if _, ok := gp.members[userID]; !ok {
		return false
	}
	delete(gp.members, userID)
	for i, id := range gp.order {
		if id == userID {
			gp.order = append(gp.order[:i], gp.order[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether the user is waiting in the guild's pool.
func (p *WaitingPool) Contains(guildID sharedtypes.GuildID, userID sharedtypes.UserID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	gp, ok := p.guilds[guildID]
	if !ok {
		return false
	}
	_, waiting := gp.members[userID]
	return waiting
}

// Size returns the number of waiting players in the guild's pool.
func (p *WaitingPool) Size(guildID sharedtypes.GuildID) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	gp, ok := p.guilds[guildID]
	if !ok {
		return 0
	}
	return len(gp.order)
}

// Peek returns the first n waiting players in insertion order without
// removing them. It reports false if fewer than n players are waiting.
func (p *WaitingPool) Peek(guildID sharedtypes.GuildID, n int) ([]sharedtypes.UserID, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	gp, ok := p.guilds[guildID]
	if !ok || len(gp.order) < n {
		return nil, false
	}
	out := make([]sharedtypes.UserID, n)
	copy(out, gp.order[:n])
	return out, true
}

// RemoveAll takes the given users out of the guild's pool. Used after a
// formed match has been persisted.
func (p *WaitingPool) RemoveAll(guildID sharedtypes.GuildID, userIDs []sharedtypes.UserID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	gp, ok := p.guilds[guildID]
	if !ok {
		return
	}
	drop := make(map[sharedtypes.UserID]struct{}, len(userIDs))
	for _, id := range userIDs {
		drop[id] = struct{}{}
		delete(gp.members, id)
	}
	remaining := gp.order[:0]
	for _, id := range gp.order {
		if _, gone := drop[id]; !gone {
			remaining = append(remaining, id)
		}
	}
	gp.order = remaining
}
