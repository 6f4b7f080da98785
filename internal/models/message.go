package models

import (
	"time"
)

// Message is a single inbox record. The JSON field names are the wire
// format for both the store file and the API, so they must stay stable.
type Message struct {
	ID        string   `json:"id"`
	Sender    string   `json:"sender"`
	SenderID  string   `json:"senderId"`
	Phone     string   `json:"phone"`
	Body      string   `json:"body"`
	Timestamp string   `json:"timestamp"`
	Read      bool     `json:"read"`
	Starred   bool     `json:"starred"`
	Archived  bool     `json:"archived"`
	Trashed   bool     `json:"trashed"`
	Tags      []string `json:"tags"`
}

// Flags is a snapshot of the mutable booleans of a Message, used by the
// client sync engine to roll back optimistic updates.
type Flags struct {
	Read     bool
	Starred  bool
	Archived bool
	Trashed  bool
}

// Flags returns a snapshot of the message's mutable flags.
func (m *Message) Flags() Flags {
	return Flags{
		Read:     m.Read,
		Starred:  m.Starred,
		Archived: m.Archived,
		Trashed:  m.Trashed,
	}
}

// SetFlags restores a previously captured snapshot.
func (m *Message) SetFlags(f Flags) {
	m.Read = f.Read
	m.Starred = f.Starred
	m.Archived = f.Archived
	m.Trashed = f.Trashed
}

// Time parses the message timestamp. Unparseable timestamps compare as
// "now" so a single bad record cannot fail a whole listing.
func (m *Message) Time() time.Time {
	if t, err := time.Parse(time.RFC3339, m.Timestamp); err == nil {
		return t
	}
	return time.Now()
}
