package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_briefing/internal/domain"
)

func TestKey_Deterministic(t *testing.T) {
	f := domain.DateFilter("2025-10-28")

	morning := Key(f, domain.SlotMorning)
	assert.Equal(t, morning, Key(f, domain.SlotMorning))
	assert.NotEqual(t, morning, Key(f, domain.SlotAfternoon))
	assert.NotEqual(t, morning, Key(f, domain.SlotAll))
}

func TestKey_Filters(t *testing.T) {
	cases := []struct {
		name   string
		filter domain.Filter
		slot   domain.TimeSlot
		want   string
	}{
		{"date_morning", domain.DateFilter("2025-10-28"), domain.SlotMorning, "date|2025-10-28|morning"},
		{"date_all", domain.DateFilter("2025-10-28"), domain.SlotAll, "date|2025-10-28|all"},
		{"category_ignores_slot", domain.CategoryFilter("AI"), domain.SlotEvening, "category|AI"},
		{"tag", domain.TagFilter("AI"), domain.SlotAll, "tag|AI"},
		{"tag_label_form", domain.TagFilter("user/-/label/AI"), domain.SlotAll, "tag|AI"},
		{"tag_owner_form", domain.TagFilter("user/1000/label/AI"), domain.SlotAll, "tag|AI"},
		{"category_label_form", domain.CategoryFilter("user/-/label/AI"), domain.SlotAll, "category|AI"},
		{"starred", domain.StarredFilter(), domain.SlotAll, NoKey},
		{"zero", domain.Filter{}, domain.SlotAll, NoKey},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Key(tc.filter, tc.slot))
		})
	}

	assert.NotEqual(t, Key(domain.CategoryFilter("AI"), ""), Key(domain.TagFilter("AI"), ""))
}

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Get(ctx, "category|AI")
	require.NoError(t, err)
	assert.False(t, ok)

	entry := &Entry{
		Articles: []domain.Article{{ID: "7", Title: "seven", Tags: []string{}}},
		StoredAt: time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, m.Set(ctx, "category|AI", entry))

	got, ok, err := m.Get(ctx, "category|AI")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry, got)

	replacement := &Entry{Articles: []domain.Article{{ID: "8"}}}
	require.NoError(t, m.Set(ctx, "category|AI", replacement))
	got, _, _ = m.Get(ctx, "category|AI")
	assert.Equal(t, domain.ArticleID("8"), got.Articles[0].ID)
}

func TestMemory_NoKeyIsNeverStored(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, NoKey, &Entry{Articles: []domain.Article{{ID: "1"}}}))
	_, ok, err := m.Get(ctx, NoKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEntryFromView(t *testing.T) {
	now := time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC)
	v := domain.View{
		Filter:           domain.DateFilter("2025-10-28"),
		Reports:          []domain.BriefingReport{{ID: "2025-10-28-morning"}},
		SelectedReportID: "2025-10-28-morning",
		Loading:          true,
	}

	e := EntryFromView(v, now)
	assert.Equal(t, v.Reports, e.Reports)
	assert.Equal(t, "2025-10-28-morning", e.SelectedReportID)
	assert.Equal(t, now, e.StoredAt)
}
