// Package cache keeps fetched filter results for the session, keyed by
// filter and time slot. Entries never expire; a newer fetch or a committed
// mutation for the same key overwrites them.
package cache

import (
	"context"
	"strings"
	"time"

	"news_briefing/internal/domain"
	"news_briefing/internal/tags"
)

// NoKey is returned for filters whose results are not cached.
const NoKey = ""

// Entry is a cached filter result. Date filters fill Reports and
// SelectedReportID, category and tag filters fill Articles.
type Entry struct {
	Reports          []domain.BriefingReport `json:"reports,omitempty"`
	SelectedReportID string                  `json:"selected_report_id,omitempty"`
	Articles         []domain.Article        `json:"articles,omitempty"`
	StoredAt         time.Time               `json:"stored_at"`
}

type Cache interface {
	Get(ctx context.Context, key string) (*Entry, bool, error)
	Set(ctx context.Context, key string, e *Entry) error
}

// Key derives the cache key of a filter. The slot only takes part for date
// filters and label tag values are reduced to their label name, so both
// spellings of a label share one entry. Starred and unknown filters yield
// NoKey.
func Key(f domain.Filter, slot domain.TimeSlot) string {
	switch f.Type {
	case domain.FilterDate:
		s := string(slot)
		if slot == domain.SlotAll {
			s = "all"
		}
		return join("date", f.Value, s)
	case domain.FilterCategory, domain.FilterTag:
		value := f.Value
		if name, ok := tags.LabelName(value); ok {
			value = name
		}
		return join(string(f.Type), value)
	default:
		return NoKey
	}
}

// EntryFromView captures the cacheable part of a view.
func EntryFromView(v domain.View, now time.Time) *Entry {
	return &Entry{
		Reports:          v.Reports,
		SelectedReportID: v.SelectedReportID,
		Articles:         v.Articles,
		StoredAt:         now,
	}
}

func join(parts ...string) string {
	return strings.Join(parts, "|")
}
