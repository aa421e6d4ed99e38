package sharedtypes

// GuildID is a Discord guild (server) identifier.
type GuildID string

// UserID is a Discord user identifier. Users are always scoped to a guild;
// the same UserID in two guilds refers to two independent profiles.
type UserID string

// RoleID is a Discord role identifier.
type RoleID string

// ChannelID is a Discord channel or category identifier.
type ChannelID string

// MatchID identifies a match within a guild. It is only unique per guild.
type MatchID int64

// Rating is a player's skill estimate within a guild.
type Rating int

// Score is a team's score in a match.
type Score int

// TeamNumber identifies which side of a match a player was assigned to.
type TeamNumber int

const (
	// TeamUnassigned is the sentinel value carried by a match player row
	// before formation has assigned them to a side.
	TeamUnassigned TeamNumber = 0
	TeamOne        TeamNumber = 1
	TeamTwo        TeamNumber = 2
)

// IsValid reports whether the team number is an assigned side.
func (t TeamNumber) IsValid() bool {
	return t == TeamOne || t == TeamTwo
}

// MatchStatus is the lifecycle state of a match. There are exactly two
// states and a single legal transition, ongoing -> finalized.
type MatchStatus string

const (
	MatchStatusOngoing   MatchStatus = "ongoing"
	MatchStatusFinalized MatchStatus = "finalized"
)

// IsValid reports whether the status is one of the two lifecycle states.
func (s MatchStatus) IsValid() bool {
	return s == MatchStatusOngoing || s == MatchStatusFinalized
}

// MatchOutcome is the result of a finalized match from team one's perspective.
type MatchOutcome string

const (
	OutcomeTeamOneWin MatchOutcome = "team1_win"
	OutcomeTeamTwoWin MatchOutcome = "team2_win"
	OutcomeDraw       MatchOutcome = "draw"
)

// OutcomeFromScores derives the match outcome from the two final scores.
func OutcomeFromScores(team1, team2 Score) MatchOutcome {
	switch {
	case team1 > team2:
		return OutcomeTeamOneWin
	case team2 > team1:
		return OutcomeTeamTwoWin
	default:
		return OutcomeDraw
	}
}
