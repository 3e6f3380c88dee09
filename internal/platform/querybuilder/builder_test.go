package querybuilder

import (
	"testing"
	"time"
)

func TestSelect_WhereOrderLimit(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	query, args, err := Select("*").From("game_odds").
		Where(
			Gte("kickoff_at", now),
			IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "id").
		Limit(50).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT * FROM game_odds WHERE kickoff_at >= $1 AND deleted_at IS NULL ORDER BY kickoff_at, id LIMIT 50"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(args))
	}
}

func TestInsertModel_UpsertSuffix(t *testing.T) {
	t.Parallel()

	type row struct {
		ExternalID string `db:"external_game_id"`
		HomeTeam   string `db:"home_team"`
		ignored    int    //nolint:unused
		NoTag      string `db:"-"`
	}

	query, args, err := InsertModel("game_odds", row{ExternalID: "abc", HomeTeam: "Georgia Tech Yellow Jackets"}, `ON CONFLICT (external_game_id)
DO UPDATE SET home_team = EXCLUDED.home_team`)
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO game_odds (external_game_id, home_team) VALUES ($1, $2) ON CONFLICT (external_game_id)\nDO UPDATE SET home_team = EXCLUDED.home_team"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
}

func TestUpdate_SetWhere(t *testing.T) {
	t.Parallel()

	query, args, err := Update("comments").
		Set("deleted_at", time.Now()).
		Where(Eq("id", int64(7)), IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE comments SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
}

func TestExpr_RewritesPlaceholders(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("saved_bets").
		Where(
			Eq("user_id", "u-1"),
			Expr("game_id IN (SELECT id FROM game_odds WHERE kickoff_at >= ?)", time.Unix(0, 0)),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT id FROM saved_bets WHERE user_id = $1 AND game_id IN (SELECT id FROM game_odds WHERE kickoff_at >= $2)"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
}
