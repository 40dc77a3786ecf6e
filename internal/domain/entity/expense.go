package entity

import "time"

// Expense is a single spending event owned by a user.
// Category is a free-form string; the client's fixed category list is
// presentation-only.
type Expense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}
