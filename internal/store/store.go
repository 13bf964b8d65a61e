// Package store holds the session's authoritative article cache.
package store

import (
	"fmt"
	"slices"
	"sync"

	"news_briefing/internal/domain"
	"news_briefing/internal/merge"
	"news_briefing/internal/tags"
)

// Store keeps articles by id plus the indices derived from them.
// Only the fetch orchestrator and the mutation coordinator write to it.
type Store struct {
	mu sync.RWMutex

	articles   map[domain.ArticleID]domain.Article
	starredIDs []domain.ArticleID
	tagUsage   map[string]int

	selectedID domain.ArticleID
	readerOpen bool
}

func New() *Store {
	return &Store{
		articles: make(map[domain.ArticleID]domain.Article),
		tagUsage: make(map[string]int),
	}
}

// AddArticles upserts by id, overlaying each incoming record on the known one.
func (s *Store) AddArticles(list []domain.Article) {
	if len(list) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, in := range list {
		if in.ID == "" {
			continue
		}
		existing, ok := s.articles[in.ID]
		next := merge.Overlay(existing, in)
		next.Tags = tags.Normalize(next.Tags)
		s.put(existing, ok, next)
	}
}

// UpdateArticle replaces the full record for a.ID.
func (s *Store) UpdateArticle(a domain.Article) {
	if a.ID == "" {
		return
	}
	a.Tags = tags.Normalize(a.Tags)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.articles[a.ID]
	s.put(existing, ok, a)
}

func (s *Store) Get(id domain.ArticleID) (domain.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	return clone(a), ok
}

// GetMany returns the known articles among ids, in the order given.
func (s *Store) GetMany(ids []domain.ArticleID) []domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Article, 0, len(ids))
	for _, id := range ids {
		if a, ok := s.articles[id]; ok {
			out = append(out, clone(a))
		}
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles)
}

// StarredIDs lists starred article ids, most recently starred first.
func (s *Store) StarredIDs() []domain.ArticleID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.starredIDs)
}

func (s *Store) StarredArticles() []domain.Article {
	return s.GetMany(s.StarredIDs())
}

// TagUsage counts how many stored articles carry each user label.
func (s *Store) TagUsage() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int, len(s.tagUsage))
	for k, v := range s.tagUsage {
		out[k] = v
	}
	return out
}

// SelectArticle opens the reader on id.
func (s *Store) SelectArticle(id domain.ArticleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[id]; !ok {
		return fmt.Errorf("select article %s: %w", id, domain.ErrNotFound)
	}
	s.selectedID = id
	s.readerOpen = true
	return nil
}

func (s *Store) CloseReader() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readerOpen = false
}

// Selection returns the selected article id and whether the reader is open.
func (s *Store) Selection() (domain.ArticleID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID, s.readerOpen
}

// put stores next and adjusts tag usage and starred order. Callers hold mu.
func (s *Store) put(prev domain.Article, hadPrev bool, next domain.Article) {
	var prevTags []string
	if hadPrev {
		prevTags = prev.Tags
	}

	added, removed := tags.Diff(tags.Labels(prevTags), tags.Labels(next.Tags))
	for _, t := range added {
		s.tagUsage[t]++
	}
	for _, t := range removed {
		if s.tagUsage[t] <= 1 {
			delete(s.tagUsage, t)
		} else {
			s.tagUsage[t]--
		}
	}

	wasStarred := tags.Contains(prevTags, tags.Starred)
	isStarred := tags.Contains(next.Tags, tags.Starred)
	switch {
	case isStarred && !wasStarred:
		s.unstar(next.ID)
		s.starredIDs = append([]domain.ArticleID{next.ID}, s.starredIDs...)
	case !isStarred && wasStarred:
		s.unstar(next.ID)
	}

	s.articles[next.ID] = clone(next)
}

func (s *Store) unstar(id domain.ArticleID) {
	s.starredIDs = slices.DeleteFunc(s.starredIDs, func(x domain.ArticleID) bool { return x == id })
}

func clone(a domain.Article) domain.Article {
	a.Keywords = slices.Clone(a.Keywords)
	if a.Tags != nil {
		a.Tags = slices.Clone(a.Tags)
	}
	return a
}
