package postgres

import (
	"database/sql"
	"time"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
