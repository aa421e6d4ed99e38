package matchservice

import (
	"math"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// teamAverage returns the mean rating of a team.
func teamAverage(ratings []sharedtypes.Rating) float64 {
	var sum float64
	for _, r := range ratings {
		sum += float64(r)
	}
	return sum / float64(len(ratings))
}

// ratingDeltas computes the uniform per-team rating movement for a finalized
// match. The expected score for team one follows the logistic curve
// 1/(1+10^((avgB-avgA)/scale)) over team-average ratings; each team's delta
// is round(K*(actual-expected)) and is applied to every member of that team.
// The two deltas are computed independently, so rounding keeps them symmetric
// in magnitude only when the expectation is symmetric.
func ratingDeltas(teamA, teamB []sharedtypes.Rating, outcome sharedtypes.MatchOutcome, kFactor, scale float64) (deltaA, deltaB int) {
	avgA := teamAverage(teamA)
	avgB := teamAverage(teamB)

	expectedA := 1.0 / (1.0 + math.Pow(10, (avgB-avgA)/scale))
	expectedB := 1.0 - expectedA

	var actualA, actualB float64
	switch outcome {
	case sharedtypes.OutcomeTeamOneWin:
		actualA, actualB = 1, 0
	case sharedtypes.OutcomeTeamTwoWin:
		actualA, actualB = 0, 1
	case sharedtypes.OutcomeDraw:
		actualA, actualB = 0.5, 0.5
	}

	deltaA = int(math.Round(kFactor * (actualA - expectedA)))
	deltaB = int(math.Round(kFactor * (actualB - expectedB)))
	return deltaA, deltaB
}
