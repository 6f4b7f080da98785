package models

// Filter selects the visible bucket of the inbox. Buckets are mutually
// exclusive except that starred deliberately includes archived items.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterUnread   Filter = "unread"
	FilterStarred  Filter = "starred"
	FilterArchived Filter = "archived"
	FilterTrash    Filter = "trash"
)

// ParseFilter maps a wire filter name onto a bucket. Unrecognized names
// fall back to the inbox ("all") bucket rather than erroring.
func ParseFilter(s string) Filter {
	switch f := Filter(s); f {
	case FilterAll, FilterUnread, FilterStarred, FilterArchived, FilterTrash:
		return f
	default:
		return FilterAll
	}
}

// Matches reports whether the message belongs to the filter's bucket.
func (f Filter) Matches(m *Message) bool {
	switch f {
	case FilterUnread:
		return !m.Trashed && !m.Archived && !m.Read
	case FilterStarred:
		// archived-but-starred items stay visible here
		return !m.Trashed && m.Starred
	case FilterArchived:
		return !m.Trashed && m.Archived
	case FilterTrash:
		return m.Trashed
	default:
		return !m.Trashed && !m.Archived
	}
}
