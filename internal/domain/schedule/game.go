package schedule

import (
	"strings"
	"time"
)

const (
	SeasonTypeRegular    = "regular"
	SeasonTypePostseason = "postseason"
)

// Game is one entry of the Georgia Tech schedule as reported by the college
// football data provider.
type Game struct {
	ID         int64
	ExternalID *int64

	Season     int
	Week       *int
	SeasonType string

	HomeTeam string
	AwayTeam string

	// GameDate is the kickoff instant when known. StartTime is the display
	// value and holds the literal "TBD" when the provider flags the start
	// time as undecided.
	GameDate  *time.Time
	StartTime *string
	Venue     string

	HomeScore *int
	AwayScore *int

	Completed      bool
	NeutralSite    bool
	ConferenceGame bool
}

// IsHomeGame reports whether Georgia Tech is the home side. The provider is
// not consistent about naming ("Georgia Tech" vs "Georgia Tech Yellow
// Jackets"), so this is a substring check.
func (g Game) IsHomeGame() bool {
	return strings.Contains(g.HomeTeam, "Georgia Tech") || strings.Contains(g.HomeTeam, "Yellow Jackets")
}

// Opponent returns the non-Georgia-Tech side.
func (g Game) Opponent() string {
	if g.IsHomeGame() {
		return g.AwayTeam
	}
	return g.HomeTeam
}
