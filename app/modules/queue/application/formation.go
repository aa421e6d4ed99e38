package queueservice

import (
	"sort"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// Player is one queued player handed to team formation.
type Player struct {
	UserID sharedtypes.UserID
	Rating sharedtypes.Rating
}

// Partition splits an even-sized set of players into two equal teams. The
// players are sorted by rating descending and dealt in a snake pattern
// (1st->A, 2nd->B, 3rd->B, 4th->A, ...) so the team rating sums stay close
// without exhaustive search. The sort is stable, so rating ties keep their
// queue-insertion order and the assignment is fully deterministic.
func Partition(players []Player) (teamA, teamB []Player) {
	sorted := make([]Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	teamA = make([]Player, 0, len(sorted)/2)
	teamB = make([]Player, 0, len(sorted)/2)
	for i, player := range sorted {
		if i%4 == 0 || i%4 == 3 {
			teamA = append(teamA, player)
		} else {
			teamB = append(teamB, player)
		}
	}
	return teamA, teamB
}
