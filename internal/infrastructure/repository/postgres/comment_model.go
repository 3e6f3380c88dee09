package postgres

import "time"

type commentTableModel struct {
	ID          int64      `db:"id"`
	SubjectKind string     `db:"subject_kind"`
	SubjectID   int64      `db:"subject_id"`
	Content     string     `db:"content"`
	AuthorID    string     `db:"author_id"`
	AuthorName  string     `db:"author_name"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type commentInsertModel struct {
	SubjectKind string `db:"subject_kind"`
	SubjectID   int64  `db:"subject_id"`
	Content     string `db:"content"`
	AuthorID    string `db:"author_id"`
	AuthorName  string `db:"author_name"`
}
