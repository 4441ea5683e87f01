package domain

// NotificationKind identifies the outcome being reported.
type NotificationKind string

// Notification kinds raised by the session.
const (
	// NotificationSearchFailed is raised when query execution fails.
	NotificationSearchFailed NotificationKind = "search_failed"

	// NotificationIndexed is raised when a draft was accepted by the service.
	NotificationIndexed NotificationKind = "indexed"

	// NotificationIndexFailed is raised when a draft submission fails.
	NotificationIndexFailed NotificationKind = "index_failed"
)

// Notification is a user-visible outcome of an explicit action.
type Notification struct {
	Kind    NotificationKind
	Message string

	// Err is the cause for failure kinds, nil otherwise.
	Err error
}

// IsFailure reports whether the notification describes a failed action.
func (n Notification) IsFailure() bool {
	return n.Kind == NotificationSearchFailed || n.Kind == NotificationIndexFailed
}

// Default notification messages.
const (
	MessageSearchFailed = "Error fetching search results!"
	MessageIndexed      = "Document Indexed!"
	MessageIndexFailed  = "Failed to index document!"
)
