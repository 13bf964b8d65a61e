package freshrss

// StreamResponse is the reply of stream/contents and stream/items/contents.
type StreamResponse struct {
	ID           string `json:"id"`
	Items        []Item `json:"items"`
	Continuation string `json:"continuation"`
}

type Item struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Published     int64    `json:"published"`
	CrawlTimeMsec string   `json:"crawlTimeMsec"`
	Categories    []string `json:"categories"`
	Alternate     []Link   `json:"alternate"`
	Canonical     []Link   `json:"canonical"`
	Origin        Origin   `json:"origin"`
}

type Link struct {
	Href string `json:"href"`
}

type Origin struct {
	StreamID string `json:"streamId"`
	Title    string `json:"title"`
	HTMLURL  string `json:"htmlUrl"`
}

type TagListResponse struct {
	Tags []TagEntry `json:"tags"`
}

type TagEntry struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	UnreadCount int    `json:"unread_count"`
}
