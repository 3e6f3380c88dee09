package postgres

import "time"

type savedBetTableModel struct {
	ID        int64      `db:"id"`
	UserID    string     `db:"user_id"`
	GameID    int64      `db:"game_id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}
