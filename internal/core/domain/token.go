package domain

import "time"

// AccessToken is a stored bearer credential for the remote ad platform.
// Token holds the raw credential; it is attached verbatim to every remote
// call made on behalf of this token's accounts.
type AccessToken struct {
	ID             int64
	OrganizationID *int64
	Name           string
	Token          string
	IsActive       bool
	CreatedAt      time.Time
	LastUsed       *time.Time
}
