package service

import (
	"news_briefing/internal/domain"
	"news_briefing/internal/store"
)

// Session is the single reader session the process hosts. It owns the
// store and hands it to the orchestrator and the coordinator, the only
// components that write to it.
type Session struct {
	*Orchestrator
	*Coordinator
	*ContentResolver

	store *store.Store
}

func NewSession(st *store.Store, orchestrator *Orchestrator, coordinator *Coordinator, resolver *ContentResolver) *Session {
	return &Session{
		Orchestrator:    orchestrator,
		Coordinator:     coordinator,
		ContentResolver: resolver,
		store:           st,
	}
}

func (s *Session) Get(id domain.ArticleID) (domain.Article, bool) {
	return s.store.Get(id)
}

func (s *Session) StarredArticles() []domain.Article {
	return s.store.StarredArticles()
}

func (s *Session) SelectArticle(id domain.ArticleID) error {
	return s.store.SelectArticle(id)
}

func (s *Session) CloseReader() {
	s.store.CloseReader()
}

func (s *Session) Selection() (domain.ArticleID, bool) {
	return s.store.Selection()
}
