package entity

import "time"

// Feedback types form a closed set, enforced at submission and by a
// check constraint in the store.
const (
	FeedbackTypeBug         = "bug"
	FeedbackTypeFeature     = "feature"
	FeedbackTypeImprovement = "improvement"
	FeedbackTypeOther       = "other"
)

// Feedback is an append-only user-submitted note. No update or delete.
type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidFeedbackType reports whether t is one of the closed set.
func ValidFeedbackType(t string) bool {
	switch t {
	case FeedbackTypeBug, FeedbackTypeFeature, FeedbackTypeImprovement, FeedbackTypeOther:
		return true
	}
	return false
}
