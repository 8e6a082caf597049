package domain

import "time"

// CampaignTemplate is a saved set of campaign and ad-set defaults for quick
// launching. TargetingJSON stores the targeting payload as raw JSON text.
type CampaignTemplate struct {
	ID               int64
	Name             string
	Description      string
	Objective        int
	DailyBudget      float64
	LifetimeBudget   float64
	BillingEvent     int
	BidAmount        float64
	OptimizationGoal int
	TargetingJSON    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
