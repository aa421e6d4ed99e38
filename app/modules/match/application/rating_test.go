package matchservice

import (
	"testing"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

func TestRatingDeltas(t *testing.T) {
	ratings := func(values ...int) []sharedtypes.Rating {
		out := make([]sharedtypes.Rating, len(values))
		for i, v := range values {
			out[i] = sharedtypes.Rating(v)
		}
		return out
	}

	t.Run("even teams move sixteen points at k 32", func(t *testing.T) {
		deltaA, deltaB := ratingDeltas(ratings(1000, 1000), ratings(1000, 1000), sharedtypes.OutcomeTeamOneWin, 32, 400)
		if deltaA != 16 || deltaB != -16 {
			t.Errorf("expected +16/-16, got %d/%d", deltaA, deltaB)
		}
	})

	t.Run("favorite gains less than underdog would", func(t *testing.T) {
		favoriteWin, _ := ratingDeltas(ratings(1400, 1400), ratings(1000, 1000), sharedtypes.OutcomeTeamOneWin, 32, 400)
		underdogWin, _ := ratingDeltas(ratings(1000, 1000), ratings(1400, 1400), sharedtypes.OutcomeTeamOneWin, 32, 400)
		if favoriteWin >= underdogWin {
			t.Errorf("favorite win %d should gain less than underdog win %d", favoriteWin, underdogWin)
		}
		if favoriteWin <= 0 || underdogWin <= 0 {
			t.Errorf("winners must gain, got %d and %d", favoriteWin, underdogWin)
		}
	})

	t.Run("upset loss costs the favorite more", func(t *testing.T) {
		_, favoriteLoss := ratingDeltas(ratings(1000), ratings(1400), sharedtypes.OutcomeTeamOneWin, 32, 400)
		if favoriteLoss >= 0 {
			t.Errorf("upset loser must lose points, got %d", favoriteLoss)
		}
		_, expectedLoss := ratingDeltas(ratings(1400), ratings(1000), sharedtypes.OutcomeTeamOneWin, 32, 400)
		if favoriteLoss >= expectedLoss {
			t.Errorf("upset loss %d should cost more than expected loss %d", favoriteLoss, expectedLoss)
		}
	})

	t.Run("draw between even teams moves nothing", func(t *testing.T) {
		deltaA, deltaB := ratingDeltas(ratings(1000, 1000), ratings(1000, 1000), sharedtypes.OutcomeDraw, 32, 400)
		if deltaA != 0 || deltaB != 0 {
			t.Errorf("expected 0/0, got %d/%d", deltaA, deltaB)
		}
	})

	t.Run("draw between uneven teams rewards the underdog", func(t *testing.T) {
		deltaA, deltaB := ratingDeltas(ratings(1200, 1200), ratings(1000, 1000), sharedtypes.OutcomeDraw, 32, 400)
		if deltaA >= 0 {
			t.Errorf("drawn favorite should lose points, got %d", deltaA)
		}
		if deltaB <= 0 {
			t.Errorf("drawn underdog should gain points, got %d", deltaB)
		}
	})

	t.Run("averages drive mixed team ratings", func(t *testing.T) {
		// 1200/800 averages to 1000, identical to a flat 1000 team.
		mixedA, mixedB := ratingDeltas(ratings(1200, 800), ratings(1000, 1000), sharedtypes.OutcomeTeamOneWin, 32, 400)
		flatA, flatB := ratingDeltas(ratings(1000, 1000), ratings(1000, 1000), sharedtypes.OutcomeTeamOneWin, 32, 400)
		if mixedA != flatA || mixedB != flatB {
			t.Errorf("expected %d/%d, got %d/%d", flatA, flatB, mixedA, mixedB)
		}
	})
}
