package odds

import "time"

// Game holds one football game and its betting lines from the single
// configured bookmaker. ExternalID is the provider's game id and is unique:
// re-ingesting the same id fully replaces every odds field.
type Game struct {
	ID         int64
	ExternalID string

	HomeTeam  string
	AwayTeam  string
	KickoffAt time.Time

	BookmakerName string
	LastUpdatedAt time.Time

	// Moneyline (American odds). Nil when the h2h market was absent.
	HomeMoneyline *int
	AwayMoneyline *int

	// Spread points and their prices. Nil when the spreads market was absent.
	HomeSpreadPoint *float64
	HomeSpreadPrice *int
	AwaySpreadPoint *float64
	AwaySpreadPrice *int

	// Totals (over/under). Nil when the totals market was absent.
	TotalOverPoint  *float64
	TotalOverPrice  *int
	TotalUnderPoint *float64
	TotalUnderPrice *int
}
