package domain

import "strings"

// Draft is a document being composed for indexing.
// Both fields are edited independently of the search query.
type Draft struct {
	// ID is the document identifier sent as docId.
	ID string

	// Content is the document body sent as content.
	Content string
}

// IsEmpty reports whether neither field has been filled in.
func (d Draft) IsEmpty() bool {
	return strings.TrimSpace(d.ID) == "" && strings.TrimSpace(d.Content) == ""
}
