package postgres

import "time"

type articleTableModel struct {
	ID         int64      `db:"id"`
	Title      string     `db:"title"`
	Content    string     `db:"content"`
	AuthorID   string     `db:"author_id"`
	AuthorName string     `db:"author_name"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type articleInsertModel struct {
	Title      string `db:"title"`
	Content    string `db:"content"`
	AuthorID   string `db:"author_id"`
	AuthorName string `db:"author_name"`
}
