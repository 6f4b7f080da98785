package service

import (
	"sort"

	"smssync/internal/errors"
	"smssync/internal/models"
	"smssync/internal/store"

	"github.com/sirupsen/logrus"
)

// MessageStore is the persistence surface the inbox service needs.
type MessageStore interface {
	Load() ([]models.Message, error)
	Save([]models.Message) error
}

// InboxService implements the authoritative side of the inbox: the
// filter/sort/search pipeline and the mutation engine. Every mutation
// reads the full collection, applies, and rewrites it; last-write-wins is
// the accepted consistency model at this scale.
type InboxService struct {
	store  MessageStore
	logger *logrus.Logger
}

func NewInboxService(st MessageStore, logger *logrus.Logger) *InboxService {
	return &InboxService{
		store:  st,
		logger: logger,
	}
}

// List returns the visible items for a view request.
func (s *InboxService) List(filter models.Filter, search string, order SortOrder) ([]models.Message, error) {
	items, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return FilterMessages(items, filter, search, order), nil
}

// Update applies one action to one record and persists the collection.
// It returns the canonical updated record, or nil for delete_forever.
func (s *InboxService) Update(id string, action models.Action) (*models.Message, error) {
	items, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	idx := store.IndexByID(items, id)
	if idx == -1 {
		return nil, errors.NewNotFoundError("message", id)
	}

	if action.IsDelete() {
		items = append(items[:idx], items[idx+1:]...)
		if err := s.store.Save(items); err != nil {
			return nil, err
		}
		s.logger.WithField("id", id).Info("Message deleted forever")
		return nil, nil
	}

	action.Apply(&items[idx])
	if err := s.store.Save(items); err != nil {
		return nil, err
	}

	updated := items[idx]
	s.logger.WithFields(logrus.Fields{
		"id":     id,
		"action": action,
	}).Debug("Message updated")
	return &updated, nil
}

// Bulk applies one action to a set of ids. Unknown ids are silently
// skipped; the result carries only the records actually mutated (empty
// for delete_forever). Deletions resolve every target position before
// removing any, in descending order, so earlier removals cannot shift a
// pending one.
func (s *InboxService) Bulk(ids []string, action models.Action) ([]models.Message, error) {
	items, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	updated := []models.Message{}
	var toDelete []int
	seen := make(map[int]struct{}, len(ids))

	for _, id := range ids {
		idx := store.IndexByID(items, id)
		if idx == -1 {
			continue
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}

		if action.IsDelete() {
			toDelete = append(toDelete, idx)
		} else {
			action.Apply(&items[idx])
			updated = append(updated, items[idx])
		}
	}

	if action.IsDelete() && len(toDelete) > 0 {
		sort.Sort(sort.Reverse(sort.IntSlice(toDelete)))
		for _, idx := range toDelete {
			items = append(items[:idx], items[idx+1:]...)
		}
	}

	if err := s.store.Save(items); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"requested": len(ids),
		"mutated":   len(updated) + len(toDelete),
		"action":    action,
	}).Debug("Bulk action applied")
	return updated, nil
}
