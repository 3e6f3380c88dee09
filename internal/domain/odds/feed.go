package odds

// FeedGame is one game as delivered by the odds provider, bookmakers
// nested. Timestamps stay raw strings here; ingestion owns parsing.
type FeedGame struct {
	ID           string          `json:"id"`
	HomeTeam     string          `json:"home_team"`
	AwayTeam     string          `json:"away_team"`
	CommenceTime string          `json:"commence_time"`
	Bookmakers   []FeedBookmaker `json:"bookmakers"`
}

type FeedBookmaker struct {
	Key        string       `json:"key"`
	Title      string       `json:"title"`
	LastUpdate string       `json:"last_update"`
	Markets    []FeedMarket `json:"markets"`
}

type FeedMarket struct {
	Key      string        `json:"key"`
	Outcomes []FeedOutcome `json:"outcomes"`
}

type FeedOutcome struct {
	Name  string   `json:"name"`
	Price int      `json:"price"`
	Point *float64 `json:"point"`
}
