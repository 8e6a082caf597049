package domain

import "time"

// Organization groups access tokens that belong to the same advertiser.
type Organization struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
