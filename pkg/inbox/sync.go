package inbox

import (
	"context"
	"fmt"

	"smssync/internal/models"

	"github.com/sirupsen/logrus"
)

// View is the client's current filter/search/sort selection.
type View struct {
	Filter string
	Search string
	Sort   string
}

// Sync maintains a speculative mirror of the visible inbox items. Actions
// are applied locally first, then confirmed against the server; on failure
// the mirror rolls back to the captured snapshot. Only the most recent
// action (single or bulk) is undoable.
//
// Sync is not safe for concurrent use: it models a single-threaded
// cooperative UI loop. Run it from one goroutine.
type Sync struct {
	api    API
	logger *logrus.Logger
	view   View
	items  []models.Message
	undo   *undoEntry

	// onChange, when set, runs after every local state change. It stands
	// in for the render step of a UI.
	onChange func()
}

// undoEntry captures everything needed to revert the last action: the
// affected ids, flag snapshots, and the reverse action. hasReverse is
// false only for delete_forever, whose undo degrades to a full reload.
type undoEntry struct {
	ids        []string
	action     models.Action
	prev       map[string]models.Flags
	reverse    models.Action
	hasReverse bool
}

func NewSync(api API, logger *logrus.Logger) *Sync {
	return &Sync{
		api:    api,
		logger: logger,
		view:   View{Filter: "all", Sort: "desc"},
	}
}

// SetOnChange registers a callback invoked after every local mirror change.
func (s *Sync) SetOnChange(fn func()) {
	s.onChange = fn
}

// SetView changes the active filter/search/sort selection. The mirror is
// refreshed on the next Refresh call.
func (s *Sync) SetView(v View) {
	s.view = v
}

// View returns the active selection.
func (s *Sync) View() View {
	return s.view
}

// Items returns a copy of the mirrored items in presentation order.
func (s *Sync) Items() []models.Message {
	out := make([]models.Message, len(s.items))
	copy(out, s.items)
	return out
}

// CanUndo reports whether an action is pending undo.
func (s *Sync) CanUndo() bool {
	return s.undo != nil
}

// Refresh replaces the mirror with the server's canonical view.
func (s *Sync) Refresh(ctx context.Context) error {
	items, err := s.api.List(ctx, s.view.Filter, s.view.Search, s.view.Sort)
	if err != nil {
		return fmt.Errorf("failed to refresh items: %w", err)
	}

	s.items = items
	s.notify()
	return nil
}

// Apply runs the optimistic-update protocol for a single action: snapshot,
// local apply, undo registration, server call, reconcile or roll back. The
// mirror is left either fully applied or fully reverted, never in between.
func (s *Sync) Apply(ctx context.Context, id string, action models.Action) error {
	idx := s.indexOf(id)
	if idx == -1 {
		return fmt.Errorf("unknown item: %s", id)
	}

	prev := s.items[idx].Flags()
	removed := s.items[idx]

	if action.IsDelete() {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	} else {
		action.Apply(&s.items[idx])
	}
	s.notify()

	s.register(action, []string{id}, map[string]models.Flags{id: prev})

	item, err := s.api.Update(ctx, id, action)
	if err != nil {
		// Roll back the optimistic change; the registered undo entry is
		// stale now.
		if action.IsDelete() {
			s.insertAt(idx, removed)
		} else if j := s.indexOf(id); j != -1 {
			s.items[j].SetFlags(prev)
		}
		s.undo = nil
		s.notify()
		return fmt.Errorf("action %s failed: %w", action, err)
	}

	// Server state is authoritative over the local guess.
	if item != nil {
		if j := s.indexOf(id); j != -1 {
			s.items[j] = *item
			s.notify()
		}
	}

	return nil
}

// ApplyBulk runs the same protocol across a set of ids: one optimistic
// pass, one network call, one undo entry covering the whole batch. The
// server silently drops unknown ids, so optimistic state is trusted for
// any id the response omits.
func (s *Sync) ApplyBulk(ctx context.Context, ids []string, action models.Action) error {
	prev := make(map[string]models.Flags, len(ids))
	removed := make(map[string]models.Message)
	removedAt := make(map[string]int)

	for _, id := range ids {
		idx := s.indexOf(id)
		if idx == -1 {
			continue
		}
		prev[id] = s.items[idx].Flags()
		if action.IsDelete() {
			removed[id] = s.items[idx]
			removedAt[id] = idx
		}
	}

	if action.IsDelete() {
		kept := s.items[:0]
		for i := range s.items {
			if _, gone := removed[s.items[i].ID]; !gone {
				kept = append(kept, s.items[i])
			}
		}
		s.items = kept
	} else {
		for id := range prev {
			if idx := s.indexOf(id); idx != -1 {
				action.Apply(&s.items[idx])
			}
		}
	}
	s.notify()

	s.register(action, ids, prev)

	updated, err := s.api.Bulk(ctx, ids, action)
	if err != nil {
		if action.IsDelete() {
			// Reinsert in ascending original position so earlier inserts
			// don't displace later ones.
			for _, id := range sortedByPosition(removedAt) {
				s.insertAt(removedAt[id], removed[id])
			}
		} else {
			for id, flags := range prev {
				if idx := s.indexOf(id); idx != -1 {
					s.items[idx].SetFlags(flags)
				}
			}
		}
		s.undo = nil
		s.notify()
		return fmt.Errorf("bulk action %s failed: %w", action, err)
	}

	// Reconcile canonical records where the server reported them; ids the
	// server dropped keep their optimistic state.
	for i := range updated {
		if idx := s.indexOf(updated[i].ID); idx != -1 {
			s.items[idx] = updated[i]
		}
	}
	s.notify()

	return nil
}

// Undo reverts the single most recent action. The reverse action is
// replayed against the server and the mirror restored from the snapshot.
// delete_forever has no reverse, so its undo falls back to a full reload —
// true restoration would need server-side recoverable delete.
func (s *Sync) Undo(ctx context.Context) error {
	entry := s.undo
	if entry == nil {
		return fmt.Errorf("nothing to undo")
	}
	s.undo = nil

	if !entry.hasReverse {
		return s.Refresh(ctx)
	}

	if len(entry.ids) == 1 {
		if _, err := s.api.Update(ctx, entry.ids[0], entry.reverse); err != nil {
			return fmt.Errorf("undo failed: %w", err)
		}
	} else {
		if _, err := s.api.Bulk(ctx, entry.ids, entry.reverse); err != nil {
			return fmt.Errorf("undo failed: %w", err)
		}
	}

	for _, id := range entry.ids {
		if idx := s.indexOf(id); idx != -1 {
			if flags, ok := entry.prev[id]; ok {
				s.items[idx].SetFlags(flags)
			}
		}
	}
	s.notify()

	return nil
}

// register installs a fresh undo entry, silently discarding any prior one.
func (s *Sync) register(action models.Action, ids []string, prev map[string]models.Flags) {
	reverse, ok := action.Reverse()
	s.undo = &undoEntry{
		ids:        ids,
		action:     action,
		prev:       prev,
		reverse:    reverse,
		hasReverse: ok,
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"action": action,
			"count":  len(ids),
		}).Debug("Undo entry registered")
	}
}

func (s *Sync) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Sync) insertAt(idx int, m models.Message) {
	if idx < 0 || idx > len(s.items) {
		idx = len(s.items)
	}
	s.items = append(s.items, models.Message{})
	copy(s.items[idx+1:], s.items[idx:])
	s.items[idx] = m
}

func (s *Sync) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// sortedByPosition orders ids by their captured position, ascending.
func sortedByPosition(positions map[string]int) []string {
	ids := make([]string, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && positions[ids[j-1]] > positions[ids[j]]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}
