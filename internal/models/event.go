package models

// ListEvent represents a list activity event published to Kafka whenever a
// user adds or removes a watched/saved entry.
type ListEvent struct {
	EventID     string `json:"event_id"`     // EventID is a unique identifier for the event.
	Timestamp   int64  `json:"timestamp"`    // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	UserID      string `json:"user_id"`      // UserID is the identifier of the user who acted.
	List        string `json:"list"`         // List is "watched" or "saved".
	ContentID   string `json:"content_id"`   // ContentID is the upstream catalog key.
	ContentType string `json:"content_type"` // ContentType is the content type tag, empty on removals.
	Action      string `json:"action"`       // Action is "add" or "remove".
}
