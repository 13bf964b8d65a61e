// Package merge reconciles enriched articles from the content database with
// minimal articles and tag state from the feed backend.
package merge

import (
	"news_briefing/internal/domain"
	"news_briefing/internal/tags"
)

// Overlay copies every field patch carries onto base. A zero-valued field in
// patch counts as absent, so a partial record never erases known fields.
// Tags are replaced wholesale when patch.Tags is non-nil.
func Overlay(base, patch domain.Article) domain.Article {
	out := base
	if patch.ID != "" {
		out.ID = patch.ID
	}
	setString(&out.Title, patch.Title)
	setString(&out.Link, patch.Link)
	setString(&out.SourceName, patch.SourceName)
	if !patch.PublishedAt.IsZero() {
		out.PublishedAt = patch.PublishedAt
	}
	if !patch.CrawledAt.IsZero() {
		out.CrawledAt = patch.CrawledAt
	}
	setString(&out.Category, patch.Category)
	setString(&out.BriefingSection, patch.BriefingSection)
	if patch.Keywords != nil {
		out.Keywords = append([]string(nil), patch.Keywords...)
	}
	if !patch.Verdict.IsZero() {
		out.Verdict = patch.Verdict
	}
	setString(&out.Summary, patch.Summary)
	setString(&out.TLDR, patch.TLDR)
	setString(&out.Highlights, patch.Highlights)
	setString(&out.Critiques, patch.Critiques)
	setString(&out.MarketTake, patch.MarketTake)
	if patch.Tags != nil {
		out.Tags = append([]string{}, patch.Tags...)
	}
	return out
}

// EnrichMinimal uses each minimal feed-backend record as the base and lets the
// enriched record of the same id override it. Ids without an enriched
// counterpart stay as they are.
func EnrichMinimal(minimal []domain.Article, enriched map[domain.ArticleID]domain.Article) []domain.Article {
	out := make([]domain.Article, 0, len(minimal))
	for _, m := range minimal {
		if e, ok := enriched[m.ID]; ok {
			e.Tags = nil
			m = Overlay(m, e)
		}
		out = append(out, m)
	}
	return out
}

// AttachState replaces the tags of every article with its entry in states.
// Articles missing from states get an empty, non-nil tag list.
func AttachState(articles []domain.Article, states map[domain.ArticleID][]string) []domain.Article {
	out := make([]domain.Article, len(articles))
	for i, a := range articles {
		a.Tags = tags.Normalize(states[a.ID])
		out[i] = a
	}
	return out
}

// IDs lists the article ids in order.
func IDs(articles []domain.Article) []domain.ArticleID {
	ids := make([]domain.ArticleID, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
	}
	return ids
}

// ReportID is the id of the single report built for a date query.
func ReportID(date string, slot domain.TimeSlot) string {
	if slot == domain.SlotAll {
		return date + "-all"
	}
	return date + "-" + string(slot)
}

// BuildReport groups articles into one report, bucketed by verdict importance.
// The title comes from the briefing section of the first article.
func BuildReport(date string, slot domain.TimeSlot, articles []domain.Article) domain.BriefingReport {
	report := domain.BriefingReport{
		ID:   ReportID(date, slot),
		Date: date,
		Slot: slot,
	}
	if len(articles) > 0 {
		report.Title = articles[0].BriefingSection
	}
	if report.Title == "" {
		report.Title = date
	}

	buckets := make(map[string][]domain.Article, len(domain.ImportanceOrder))
	for _, a := range articles {
		imp := importanceBucket(a.Verdict.Importance)
		buckets[imp] = append(buckets[imp], a)
	}
	for _, imp := range domain.ImportanceOrder {
		if len(buckets[imp]) == 0 {
			continue
		}
		report.Groups = append(report.Groups, domain.ReportGroup{Importance: imp, Articles: buckets[imp]})
	}
	return report
}

// Hydrate replaces each article of the view with the copy lookup returns,
// keeping the original when lookup has none.
func Hydrate(view domain.View, lookup func(domain.ArticleID) (domain.Article, bool)) domain.View {
	replace := func(in []domain.Article) []domain.Article {
		out := make([]domain.Article, len(in))
		for i, a := range in {
			if fresh, ok := lookup(a.ID); ok {
				a = fresh
			}
			out[i] = a
		}
		return out
	}

	reports := make([]domain.BriefingReport, len(view.Reports))
	for i, r := range view.Reports {
		groups := make([]domain.ReportGroup, len(r.Groups))
		for j, g := range r.Groups {
			groups[j] = domain.ReportGroup{Importance: g.Importance, Articles: replace(g.Articles)}
		}
		r.Groups = groups
		reports[i] = r
	}
	view.Reports = reports
	view.Articles = replace(view.Articles)
	return view
}

func importanceBucket(importance string) string {
	switch importance {
	case domain.ImportanceCritical, "critical":
		return domain.ImportanceCritical
	case domain.ImportanceImportant, "important":
		return domain.ImportanceImportant
	default:
		return domain.ImportanceRoutine
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
