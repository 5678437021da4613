package entitlement

import "time"

type Plan string

const (
	PlanFree       Plan = "free"
	PlanBasic      Plan = "basic"
	PlanPremium    Plan = "premium"
	PlanEnterprise Plan = "enterprise"
)

type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

// Subscription is what the engine resolves for a user. Features is always
// derived from the feature matrix for the resolved plan, never stored.
type Subscription struct {
	Plan      Plan       `json:"plan"`
	Status    Status     `json:"status"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Features  []string   `json:"features"`
}
