package httpapi

import (
	"context"
	"time"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/comment"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/news"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/odds"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/schedule"
	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

type createArticleRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type syncScheduleRequest struct {
	Year int `json:"year" validate:"omitempty,gte=1900"`
}

type articleDTO struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	CreatedAt  string `json:"createdAt"`
}

type externalArticleDTO struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Source      string `json:"source,omitempty"`
	Author      string `json:"author,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

type newsFeedDTO struct {
	External     []externalArticleDTO `json:"external"`
	Articles     []articleDTO         `json:"articles"`
	FetchWarning string               `json:"fetchWarning,omitempty"`
}

type articleDetailDTO struct {
	Article  articleDTO   `json:"article"`
	Comments []commentDTO `json:"comments"`
}

type commentDTO struct {
	ID          int64  `json:"id"`
	SubjectKind string `json:"subjectKind"`
	SubjectID   int64  `json:"subjectId"`
	Content     string `json:"content"`
	AuthorID    string `json:"authorId"`
	AuthorName  string `json:"authorName"`
	CreatedAt   string `json:"createdAt"`
}

type gameDTO struct {
	ID            int64  `json:"id"`
	ExternalID    string `json:"externalId"`
	HomeTeam      string `json:"homeTeam"`
	AwayTeam      string `json:"awayTeam"`
	KickoffAt     string `json:"kickoffAt"`
	BookmakerName string `json:"bookmakerName,omitempty"`
	LastUpdatedAt string `json:"lastUpdatedAt,omitempty"`

	HomeMoneyline *int `json:"homeMoneyline,omitempty"`
	AwayMoneyline *int `json:"awayMoneyline,omitempty"`

	HomeSpreadPoint *float64 `json:"homeSpreadPoint,omitempty"`
	HomeSpreadPrice *int     `json:"homeSpreadPrice,omitempty"`
	AwaySpreadPoint *float64 `json:"awaySpreadPoint,omitempty"`
	AwaySpreadPrice *int     `json:"awaySpreadPrice,omitempty"`

	TotalOverPoint  *float64 `json:"totalOverPoint,omitempty"`
	TotalOverPrice  *int     `json:"totalOverPrice,omitempty"`
	TotalUnderPoint *float64 `json:"totalUnderPoint,omitempty"`
	TotalUnderPrice *int     `json:"totalUnderPrice,omitempty"`

	Saved bool `json:"saved"`
}

type gameDetailDTO struct {
	Game     gameDTO      `json:"game"`
	Comments []commentDTO `json:"comments"`
}

type toggleSavedDTO struct {
	GameID int64 `json:"gameId"`
	Saved  bool  `json:"saved"`
}

type seasonFeedDTO struct {
	Season       int               `json:"season"`
	Games        []scheduleGameDTO `json:"games"`
	FetchWarning string            `json:"fetchWarning,omitempty"`
}

type scheduleGameDTO struct {
	ID             int64   `json:"id,omitempty"`
	ExternalID     *int64  `json:"externalId,omitempty"`
	Season         int     `json:"season"`
	Week           *int    `json:"week,omitempty"`
	SeasonType     string  `json:"seasonType"`
	HomeTeam       string  `json:"homeTeam"`
	AwayTeam       string  `json:"awayTeam"`
	Opponent       string  `json:"opponent"`
	IsHome         bool    `json:"isHome"`
	GameDate       string  `json:"gameDate,omitempty"`
	StartTime      *string `json:"startTime,omitempty"`
	Venue          string  `json:"venue,omitempty"`
	HomeScore      *int    `json:"homeScore,omitempty"`
	AwayScore      *int    `json:"awayScore,omitempty"`
	Completed      bool    `json:"completed"`
	NeutralSite    bool    `json:"neutralSite"`
	ConferenceGame bool    `json:"conferenceGame"`
}

func articleToDTO(v news.Article) articleDTO {
	return articleDTO{
		ID:         v.ID,
		Title:      v.Title,
		Content:    v.Content,
		AuthorID:   v.AuthorID,
		AuthorName: v.AuthorName,
		CreatedAt:  v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func externalArticleToDTO(v news.ExternalArticle) externalArticleDTO {
	return externalArticleDTO{
		Title:       v.Title,
		Description: v.Description,
		URL:         v.URL,
		ImageURL:    v.ImageURL,
		Source:      v.Source,
		Author:      v.Author,
		PublishedAt: formatOptionalTime(v.PublishedAt),
	}
}

func newsFeedToDTO(ctx context.Context, v usecase.NewsFeed) newsFeedDTO {
	_, span := startSpan(ctx, "httpapi.newsFeedToDTO")
	defer span.End()

	external := make([]externalArticleDTO, 0, len(v.External))
	for _, item := range v.External {
		external = append(external, externalArticleToDTO(item))
	}

	articles := make([]articleDTO, 0, len(v.Stored))
	for _, item := range v.Stored {
		articles = append(articles, articleToDTO(item))
	}

	return newsFeedDTO{
		External:     external,
		Articles:     articles,
		FetchWarning: v.FetchWarning,
	}
}

func commentToDTO(v comment.Comment) commentDTO {
	return commentDTO{
		ID:          v.ID,
		SubjectKind: v.SubjectKind,
		SubjectID:   v.SubjectID,
		Content:     v.Content,
		AuthorID:    v.AuthorID,
		AuthorName:  v.AuthorName,
		CreatedAt:   v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func commentsToDTO(items []comment.Comment) []commentDTO {
	out := make([]commentDTO, 0, len(items))
	for _, item := range items {
		out = append(out, commentToDTO(item))
	}
	return out
}

func gameToDTO(v odds.Game, saved bool) gameDTO {
	dto := gameDTO{
		ID:            v.ID,
		ExternalID:    v.ExternalID,
		HomeTeam:      v.HomeTeam,
		AwayTeam:      v.AwayTeam,
		KickoffAt:     v.KickoffAt.UTC().Format(time.RFC3339),
		BookmakerName: v.BookmakerName,

		HomeMoneyline: v.HomeMoneyline,
		AwayMoneyline: v.AwayMoneyline,

		HomeSpreadPoint: v.HomeSpreadPoint,
		HomeSpreadPrice: v.HomeSpreadPrice,
		AwaySpreadPoint: v.AwaySpreadPoint,
		AwaySpreadPrice: v.AwaySpreadPrice,

		TotalOverPoint:  v.TotalOverPoint,
		TotalOverPrice:  v.TotalOverPrice,
		TotalUnderPoint: v.TotalUnderPoint,
		TotalUnderPrice: v.TotalUnderPrice,

		Saved: saved,
	}
	if !v.LastUpdatedAt.IsZero() {
		dto.LastUpdatedAt = v.LastUpdatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func scheduleGameToDTO(v schedule.Game) scheduleGameDTO {
	dto := scheduleGameDTO{
		ID:             v.ID,
		ExternalID:     v.ExternalID,
		Season:         v.Season,
		Week:           v.Week,
		SeasonType:     v.SeasonType,
		HomeTeam:       v.HomeTeam,
		AwayTeam:       v.AwayTeam,
		Opponent:       v.Opponent(),
		IsHome:         v.IsHomeGame(),
		StartTime:      v.StartTime,
		Venue:          v.Venue,
		HomeScore:      v.HomeScore,
		AwayScore:      v.AwayScore,
		Completed:      v.Completed,
		NeutralSite:    v.NeutralSite,
		ConferenceGame: v.ConferenceGame,
	}
	if v.GameDate != nil && !v.GameDate.IsZero() {
		dto.GameDate = v.GameDate.UTC().Format(time.RFC3339)
	}
	return dto
}

func scheduleGamesToDTO(items []schedule.Game) []scheduleGameDTO {
	out := make([]scheduleGameDTO, 0, len(items))
	for _, item := range items {
		out = append(out, scheduleGameToDTO(item))
	}
	return out
}

func seasonFeedToDTO(v usecase.SeasonFeed) seasonFeedDTO {
	return seasonFeedDTO{
		Season:       v.Season,
		Games:        scheduleGamesToDTO(v.Games),
		FetchWarning: v.FetchWarning,
	}
}

func formatOptionalTime(v *time.Time) string {
	if v == nil || v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
