package domain

import "time"

// View is the result the session currently shows for its active filter.
// Date filters fill Reports, category/tag/starred filters fill Articles.
type View struct {
	Filter           Filter           `json:"filter"`
	Slot             TimeSlot         `json:"slot"`
	Reports          []BriefingReport `json:"reports"`
	SelectedReportID string           `json:"selected_report_id"`
	Articles         []Article        `json:"articles"`
	Loading          bool             `json:"loading"`
	FromCache        bool             `json:"from_cache"`
	Generation       uint64           `json:"generation"`
}

// ArticleIDs lists every article id in view, reports first.
func (v View) ArticleIDs() []ArticleID {
	var ids []ArticleID
	for _, r := range v.Reports {
		ids = append(ids, r.ArticleIDs()...)
	}
	for _, a := range v.Articles {
		ids = append(ids, a.ID)
	}
	return ids
}

type LabelCount struct {
	Name        string `json:"name"`
	UnreadCount int    `json:"unread_count"`
}

// FilterOptions lists what the sidebar can filter on.
type FilterOptions struct {
	Dates       []string       `json:"dates"`
	Categories  []string       `json:"categories"`
	Labels      []LabelCount   `json:"labels"`
	TagUsage    map[string]int `json:"tag_usage"`
	RefreshedAt time.Time      `json:"refreshed_at"`
}
