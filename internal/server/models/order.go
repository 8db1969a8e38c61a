package models

import "time"

// Order is a completed checkout: the charged attempt plus what was bought.
// Orders are recorded only after the gateway approves the charge.
type Order struct {
	ID        string
	UserID    string
	Method    string
	AmountINR int
	ItemIDs   []string
	Reference string
	CreatedAt time.Time
}
