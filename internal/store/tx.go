package store

import (
	"fmt"
	"slices"

	"news_briefing/internal/domain"
	"news_briefing/internal/tags"
)

// Tx is a staged tag change to a set of stored articles. It snapshots the
// articles at Begin and writes nothing until Apply or Commit. The change is
// applied to the record the store holds at that moment, so fields and tags
// written by a fetch in the meantime survive both Commit and Rollback.
//
//	tx, err := s.Begin(id)
//	defer tx.Rollback()
//	tx.Stage(id, add, remove)
//	... remote calls ...
//	tx.Commit()
type Tx struct {
	store    *Store
	previous map[domain.ArticleID]domain.Article
	starPos  map[domain.ArticleID]int

	order  []domain.ArticleID
	staged map[domain.ArticleID]tagDelta
	applied map[domain.ArticleID]appliedChange
	done    bool
}

type tagDelta struct {
	add    []string
	remove []string
}

// appliedChange is what Apply did to one article: the tags it found, the
// tags it wrote and the part of the delta that actually changed something.
type appliedChange struct {
	before  []string
	wrote   []string
	changed tagDelta
}

// Begin snapshots ids. Every id must already be stored.
func (s *Store) Begin(ids ...domain.ArticleID) (*Tx, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx := &Tx{
		store:    s,
		previous: make(map[domain.ArticleID]domain.Article, len(ids)),
		starPos:  make(map[domain.ArticleID]int),
		staged:   make(map[domain.ArticleID]tagDelta, len(ids)),
	}
	for _, id := range ids {
		a, ok := s.articles[id]
		if !ok {
			return nil, fmt.Errorf("begin mutation on %s: %w", id, domain.ErrNotFound)
		}
		tx.previous[id] = clone(a)
		if pos := slices.Index(s.starredIDs, id); pos >= 0 {
			tx.starPos[id] = pos
		}
	}
	return tx, nil
}

// Previous returns the snapshot taken at Begin.
func (t *Tx) Previous(id domain.ArticleID) (domain.Article, bool) {
	a, ok := t.previous[id]
	return clone(a), ok
}

// Stage queues tags to add to and remove from an article of the tx.
func (t *Tx) Stage(id domain.ArticleID, add, remove []string) error {
	if _, ok := t.previous[id]; !ok {
		return fmt.Errorf("stage %s: %w", id, domain.ErrNotFound)
	}
	d, seen := t.staged[id]
	if !seen {
		t.order = append(t.order, id)
	}
	d.add = append(d.add, tags.Normalize(add)...)
	d.remove = append(d.remove, tags.Normalize(remove)...)
	t.staged[id] = d
	return nil
}

// Apply writes the staged changes ahead of Commit.
func (t *Tx) Apply() {
	if t.done || t.applied != nil {
		return
	}

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	t.applied = make(map[domain.ArticleID]appliedChange, len(t.order))
	for _, id := range t.order {
		current, ok := s.articles[id]
		if !ok {
			continue
		}
		d := t.staged[id]

		var done tagDelta
		before := tags.Normalize(current.Tags)
		list := slices.Clone(before)
		for _, tag := range d.remove {
			if tags.Contains(list, tag) {
				list = tags.Without(list, tag)
				done.remove = append(done.remove, tag)
			}
		}
		for _, tag := range d.add {
			if !tags.Contains(list, tag) {
				list = tags.With(list, tag)
				done.add = append(done.add, tag)
			}
		}

		next := clone(current)
		next.Tags = list
		s.put(current, true, next)
		t.applied[id] = appliedChange{before: before, wrote: list, changed: done}
	}
}

// Commit makes the staged changes final, writing them unless already applied.
func (t *Tx) Commit() {
	if t.done {
		return
	}
	t.Apply()
	t.done = true
}

// Rollback undoes what Apply changed, if anything. It is a no-op after
// Commit, so it can be deferred unconditionally.
func (t *Tx) Rollback() {
	if t.done {
		return
	}
	t.done = true
	if t.applied == nil {
		return
	}

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range t.order {
		change, ok := t.applied[id]
		if !ok {
			continue
		}
		current, ok := s.articles[id]
		if !ok {
			continue
		}

		// untouched since Apply: restore the exact list, otherwise undo
		// only the part of the change Apply made
		list := tags.Normalize(current.Tags)
		if slices.Equal(list, change.wrote) {
			list = slices.Clone(change.before)
		} else {
			for _, tag := range change.changed.add {
				list = tags.Without(list, tag)
			}
			for _, tag := range change.changed.remove {
				list = tags.With(list, tag)
			}
		}

		next := clone(current)
		next.Tags = list
		s.put(current, true, next)

		if pos, starred := t.starPos[id]; starred && tags.Contains(list, tags.Starred) {
			s.unstar(id)
			pos = min(pos, len(s.starredIDs))
			s.starredIDs = slices.Insert(s.starredIDs, pos, id)
		}
	}
}
