package news

import "time"

// Article is a reader-submitted story stored by this service. Only the
// author may delete it.
type Article struct {
	ID         int64
	Title      string
	Content    string
	AuthorID   string
	AuthorName string
	CreatedAt  time.Time
}

// ExternalArticle is a story fetched from the news provider. It is assembled
// per request and never persisted; any field the provider omits stays at its
// zero value (nil for the timestamp).
type ExternalArticle struct {
	Title       string
	Description string
	URL         string
	ImageURL    string
	Source      string
	Author      string
	PublishedAt *time.Time
}
