package domain

// Enumerations used by the remote platform. Values are sent on the wire as
// plain integers.
const (
	ObjectiveAwareness      = 1
	ObjectiveTraffic        = 2
	ObjectiveAppInstall     = 3
	ObjectiveLeadGeneration = 4

	StatusOn  = 1
	StatusOff = 2

	BillingEventCPC = 1
	BillingEventCPM = 2

	OptimizationLinkClicks  = 1
	OptimizationImpressions = 2
	OptimizationReach       = 3

	PacingStandard    = 1
	PacingAccelerated = 2

	BudgetCapDaily    = 1
	BudgetCapLifetime = 2

	AssetImage = 1
	AssetVideo = 2
)

// CampaignSpec describes one campaign to create. Zero-valued budgets are
// omitted from the remote payload; supplying both daily and lifetime budget
// is allowed, the platform decides precedence.
type CampaignSpec struct {
	Name           string  `json:"name"`
	Objective      int     `json:"objective"`
	Status         int     `json:"status"`
	DailyBudget    float64 `json:"daily_budget,omitempty"`
	LifetimeBudget float64 `json:"lifetime_budget,omitempty"`
}

// AdSetSpec describes an ad set created under a campaign. Targeting is an
// opaque structure passed through to the platform verbatim.
type AdSetSpec struct {
	Name             string         `json:"name"`
	BillingEvent     int            `json:"billing_event"`
	BidAmount        float64        `json:"bid_amount"`
	OptimizationGoal int            `json:"optimization_goal"`
	Targeting        map[string]any `json:"targeting"`
	Status           int            `json:"status"`
	StartTime        string         `json:"start_time,omitempty"`
	EndTime          string         `json:"end_time,omitempty"`
	DailyBudget      float64        `json:"daily_budget,omitempty"`
	LifetimeBudget   float64        `json:"lifetime_budget,omitempty"`
	PacingType       int            `json:"pacing_type"`
}

// AdSpec describes an ad created under an ad set. Creative is opaque.
type AdSpec struct {
	Name        string         `json:"name"`
	Creative    map[string]any `json:"creative"`
	Status      int            `json:"status"`
	TrackingURL string         `json:"tracking_url,omitempty"`
}
