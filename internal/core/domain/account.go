package domain

import "time"

// CachedAccount mirrors a remote advertiser account. Rows are derived data:
// a refresh deletes and rewrites every row belonging to a token, they are
// never patched in place.
type CachedAccount struct {
	ID       int64
	TokenID  int64
	RemoteID int64 // account id on the remote platform
	Name     string
	Status   string
	CachedAt time.Time
}

// ResolvedAccount is a cached account joined with the credential it uses.
// The token is resolved in the same storage round trip so callers never
// traverse the relation lazily.
type ResolvedAccount struct {
	CachedAccount
	Token string
}

// AccountInfo is a cached account decorated with token and organization
// display fields for listings.
type AccountInfo struct {
	CachedAccount
	TokenName        string
	OrganizationID   *int64
	OrganizationName string
}

// RemoteAccount is one normalised entry from the remote account listing.
// The platform returns either organizations with nested account lists or a
// flat list; the client collapses both shapes into this record.
type RemoteAccount struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	OrgID   int64  `json:"org_id,omitempty"`
	OrgName string `json:"org_name,omitempty"`
}
