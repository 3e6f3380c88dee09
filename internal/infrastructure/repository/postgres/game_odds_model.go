package postgres

import "time"

type gameOddsTableModel struct {
	ID             int64      `db:"id"`
	ExternalGameID string     `db:"external_game_id"`
	HomeTeam       string     `db:"home_team"`
	AwayTeam       string     `db:"away_team"`
	KickoffAt      time.Time  `db:"kickoff_at"`
	BookmakerName  string     `db:"bookmaker_name"`
	OddsUpdatedAt  time.Time  `db:"odds_updated_at"`
	HomeMoneyline  *int       `db:"home_moneyline"`
	AwayMoneyline  *int       `db:"away_moneyline"`
	HomeSpreadPt   *float64   `db:"home_spread_point"`
	HomeSpreadPx   *int       `db:"home_spread_price"`
	AwaySpreadPt   *float64   `db:"away_spread_point"`
	AwaySpreadPx   *int       `db:"away_spread_price"`
	TotalOverPt    *float64   `db:"total_over_point"`
	TotalOverPx    *int       `db:"total_over_price"`
	TotalUnderPt   *float64   `db:"total_under_point"`
	TotalUnderPx   *int       `db:"total_under_price"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type gameOddsInsertModel struct {
	ExternalGameID string    `db:"external_game_id"`
	HomeTeam       string    `db:"home_team"`
	AwayTeam       string    `db:"away_team"`
	KickoffAt      time.Time `db:"kickoff_at"`
	BookmakerName  string    `db:"bookmaker_name"`
	OddsUpdatedAt  time.Time `db:"odds_updated_at"`
	HomeMoneyline  *int      `db:"home_moneyline"`
	AwayMoneyline  *int      `db:"away_moneyline"`
	HomeSpreadPt   *float64  `db:"home_spread_point"`
	HomeSpreadPx   *int      `db:"home_spread_price"`
	AwaySpreadPt   *float64  `db:"away_spread_point"`
	AwaySpreadPx   *int      `db:"away_spread_price"`
	TotalOverPt    *float64  `db:"total_over_point"`
	TotalOverPx    *int      `db:"total_over_price"`
	TotalUnderPt   *float64  `db:"total_under_point"`
	TotalUnderPx   *int      `db:"total_under_price"`
}
