package entitlement

import "math"

// Usage types metered by the engine.
const (
	UsageAPICalls = "api-calls"
	UsageStorage  = "storage"
)

// usageLimits maps a usage type to per-plan ceilings. Read-only after
// process start. Enterprise gets an effectively unbounded ceiling.
var usageLimits = map[string]map[Plan]int64{
	UsageAPICalls: {
		PlanFree:       100,
		PlanBasic:      1000,
		PlanPremium:    10000,
		PlanEnterprise: math.MaxInt64,
	},
	UsageStorage: {
		PlanFree:       100,
		PlanBasic:      1024,
		PlanPremium:    10240,
		PlanEnterprise: math.MaxInt64,
	},
}
