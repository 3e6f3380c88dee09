package postgres

import "time"

type scheduleGameTableModel struct {
	ID             int64      `db:"id"`
	ExternalID     *int64     `db:"external_id"`
	Season         int        `db:"season"`
	Week           *int       `db:"week"`
	SeasonType     string     `db:"season_type"`
	HomeTeam       string     `db:"home_team"`
	AwayTeam       string     `db:"away_team"`
	GameDate       *time.Time `db:"game_date"`
	StartTime      *string    `db:"start_time"`
	Venue          string     `db:"venue"`
	HomeScore      *int       `db:"home_score"`
	AwayScore      *int       `db:"away_score"`
	Completed      bool       `db:"completed"`
	NeutralSite    bool       `db:"neutral_site"`
	ConferenceGame bool       `db:"conference_game"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type scheduleGameInsertModel struct {
	ExternalID     *int64     `db:"external_id"`
	Season         int        `db:"season"`
	Week           *int       `db:"week"`
	SeasonType     string     `db:"season_type"`
	HomeTeam       string     `db:"home_team"`
	AwayTeam       string     `db:"away_team"`
	GameDate       *time.Time `db:"game_date"`
	StartTime      *string    `db:"start_time"`
	Venue          string     `db:"venue"`
	HomeScore      *int       `db:"home_score"`
	AwayScore      *int       `db:"away_score"`
	Completed      bool       `db:"completed"`
	NeutralSite    bool       `db:"neutral_site"`
	ConferenceGame bool       `db:"conference_game"`
}
