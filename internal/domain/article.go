package domain

import "time"

// ArticleID is shared by the content database and the feed backend.
type ArticleID string

type Article struct {
	ID              ArticleID `json:"id"`
	Title           string    `json:"title"`
	Link            string    `json:"link"`
	SourceName      string    `json:"source_name"`
	PublishedAt     time.Time `json:"published_at"`
	CrawledAt       time.Time `json:"crawled_at"`
	Category        string    `json:"category"`
	BriefingSection string    `json:"briefing_section"`
	Keywords        []string  `json:"keywords"`
	Verdict         Verdict   `json:"verdict"`
	Summary         string    `json:"summary"`
	TLDR            string    `json:"tldr"`
	Highlights      string    `json:"highlights"`
	Critiques       string    `json:"critiques"`
	MarketTake      string    `json:"market_take"`

	// Tags is owned by the feed backend. A nil slice means "not known yet",
	// which the store never keeps: stored articles always carry a non-nil slice.
	Tags []string `json:"tags"`
}

type Verdict struct {
	Type       string  `json:"type"`
	Score      float64 `json:"score"`
	Importance string  `json:"importance"`
}

func (v Verdict) IsZero() bool {
	return v == Verdict{}
}

// Importance buckets used to group a briefing report.
const (
	ImportanceCritical  = "重要新闻"
	ImportanceImportant = "必知要闻"
	ImportanceRoutine   = "常规更新"
)

// ImportanceOrder is the display order of report groups.
var ImportanceOrder = []string{ImportanceCritical, ImportanceImportant, ImportanceRoutine}

type ReportGroup struct {
	Importance string    `json:"importance"`
	Articles   []Article `json:"articles"`
}

// BriefingReport groups the articles of one date and time slot by importance.
type BriefingReport struct {
	ID     string        `json:"id"`
	Date   string        `json:"date"`
	Slot   TimeSlot      `json:"slot"`
	Title  string        `json:"title"`
	Groups []ReportGroup `json:"groups"`
}

// ArticleIDs lists the ids of the report in group order.
func (r BriefingReport) ArticleIDs() []ArticleID {
	var ids []ArticleID
	for _, g := range r.Groups {
		for _, a := range g.Articles {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// ReadableContent is what the reader pane shows for an article.
type ReadableContent struct {
	Title   string        `json:"title"`
	Content string        `json:"content"`
	Source  string        `json:"source"`
	Origin  ContentOrigin `json:"origin"`
}

type ContentOrigin string

const (
	ContentOriginReadability ContentOrigin = "readability"
	ContentOriginSummary     ContentOrigin = "summary"
	ContentOriginLink        ContentOrigin = "link"
)

// StateChange describes a committed edit of feed-backend state.
type StateChange struct {
	Action     string      `json:"action"`
	ArticleIDs []ArticleID `json:"article_ids"`
	Added      []string    `json:"added,omitempty"`
	Removed    []string    `json:"removed,omitempty"`
}

const (
	StateChangeTags     = "set_tags"
	StateChangeMarkRead = "mark_read"
)
