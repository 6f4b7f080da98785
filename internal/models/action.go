package models

import (
	"fmt"

	"smssync/internal/errors"
)

// Action is a named mutation applied to a single message. All actions are
// boolean flag flips except ActionDeleteForever, which removes the record
// from the collection and is irreversible server-side.
type Action string

const (
	ActionMarkRead      Action = "mark_read"
	ActionMarkUnread    Action = "mark_unread"
	ActionStar          Action = "star"
	ActionUnstar        Action = "unstar"
	ActionArchive       Action = "archive"
	ActionUnarchive     Action = "unarchive"
	ActionTrash         Action = "trash"
	ActionRestore       Action = "restore"
	ActionDeleteForever Action = "delete_forever"
)

// ParseAction validates an action name from the wire.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionMarkRead, ActionMarkUnread, ActionStar, ActionUnstar,
		ActionArchive, ActionUnarchive, ActionTrash, ActionRestore,
		ActionDeleteForever:
		return a, nil
	default:
		return "", errors.New(errors.ErrCodeValidationFailed, fmt.Sprintf("unsupported action: %q", s)).
			WithUserMessage("Unsupported action")
	}
}

// IsDelete reports whether the action removes the record instead of
// flipping a flag.
func (a Action) IsDelete() bool {
	return a == ActionDeleteForever
}

// Apply flips the flag the action targets. Delete is handled at the
// collection level and is a no-op here.
func (a Action) Apply(m *Message) {
	switch a {
	case ActionMarkRead:
		m.Read = true
	case ActionMarkUnread:
		m.Read = false
	case ActionStar:
		m.Starred = true
	case ActionUnstar:
		m.Starred = false
	case ActionArchive:
		m.Archived = true
	case ActionUnarchive:
		m.Archived = false
	case ActionTrash:
		m.Trashed = true
	case ActionRestore:
		m.Trashed = false
	case ActionDeleteForever:
		// collection-level removal, nothing to flip
	}
}

// Reverse returns the exact inverse of a flag flip. The second return is
// false for ActionDeleteForever, which has no inverse.
func (a Action) Reverse() (Action, bool) {
	switch a {
	case ActionMarkRead:
		return ActionMarkUnread, true
	case ActionMarkUnread:
		return ActionMarkRead, true
	case ActionStar:
		return ActionUnstar, true
	case ActionUnstar:
		return ActionStar, true
	case ActionArchive:
		return ActionUnarchive, true
	case ActionUnarchive:
		return ActionArchive, true
	case ActionTrash:
		return ActionRestore, true
	case ActionRestore:
		return ActionTrash, true
	default:
		return "", false
	}
}
