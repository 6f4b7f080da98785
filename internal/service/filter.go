package service

import (
	"sort"
	"strings"

	"smssync/internal/models"
)

// SortOrder is the requested timestamp ordering. Anything other than
// "asc" means newest first.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder maps a wire sort value onto an order, defaulting to
// descending.
func ParseSortOrder(s string) SortOrder {
	if s == string(SortAsc) {
		return SortAsc
	}
	return SortDesc
}

// FilterMessages produces the visible subset for a view request: bucket
// filter first, then search, then timestamp sort. The result is a fresh
// slice independent of storage order.
func FilterMessages(items []models.Message, filter models.Filter, search string, order SortOrder) []models.Message {
	out := make([]models.Message, 0, len(items))
	for i := range items {
		if filter.Matches(&items[i]) {
			out = append(out, items[i])
		}
	}

	search = strings.TrimSpace(search)
	if search != "" {
		q := strings.ToLower(search)
		matched := out[:0]
		for i := range out {
			if strings.Contains(searchText(&out[i]), q) {
				matched = append(matched, out[i])
			}
		}
		out = matched
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].Time(), out[j].Time()
		if order == SortAsc {
			return ti.Before(tj)
		}
		return tj.Before(ti)
	})

	return out
}

// searchText builds the lowercase haystack for substring search: sender,
// senderId, phone, body and space-joined tags.
func searchText(m *models.Message) string {
	parts := []string{m.Sender, m.SenderID, m.Phone, m.Body, strings.Join(m.Tags, " ")}
	return strings.ToLower(strings.Join(parts, " "))
}
