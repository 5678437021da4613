// Package entitlement decides, per user, which subscription plan applies,
// which features that plan unlocks, and how much of a metered resource the
// user has consumed against the plan's quota.
package entitlement

// Engine is the entitlement decision point. Both collaborators are
// interfaces so the digit stub and the in-memory store can be swapped for
// real backends without touching callers.
type Engine struct {
	resolver Resolver
	usage    UsageStore
}

func NewEngine(resolver Resolver, usage UsageStore) *Engine {
	return &Engine{resolver: resolver, usage: usage}
}

// Default is the process-wide engine. Handlers and middleware reach it the
// same way they reach database.DB; tests build their own via NewEngine.
var Default = NewEngine(DigitResolver{}, NewMemoryUsageStore())

// ResolveSubscription returns the user's subscription with the feature set
// recomputed from the matrix.
func (e *Engine) ResolveSubscription(userID string) Subscription {
	return e.resolver.Resolve(userID)
}

// CheckFeatureAccess reports whether the subscription's plan may use the
// feature. Enterprise always may; unknown features are denied for every
// plan. Subscription status is not consulted here: expiry enforcement is
// the caller's policy, not the engine's.
func (e *Engine) CheckFeatureAccess(userID, feature string, sub Subscription) bool {
	if sub.Plan == PlanEnterprise {
		return true
	}
	allowed, ok := featureMatrix[feature]
	if !ok {
		return false
	}
	for _, p := range allowed {
		if p == sub.Plan {
			return true
		}
	}
	return false
}

// RecordUsage adds delta to the user's counter for the usage type,
// initializing it on first use.
func (e *Engine) RecordUsage(userID, usageType string, delta int64) {
	e.usage.Add(userID, usageType, delta)
}

// CurrentUsage returns the counter, or 0 when nothing was recorded yet.
func (e *Engine) CurrentUsage(userID, usageType string) int64 {
	return e.usage.Get(userID, usageType)
}

// UsageLimit returns the plan's ceiling for the usage type, or 0 for an
// unrecognized type (unknown usage types grant no quota). The userID is
// accepted for future per-user overrides and unused by the reference policy.
func (e *Engine) UsageLimit(userID, usageType string, plan Plan) int64 {
	perPlan, ok := usageLimits[usageType]
	if !ok {
		return 0
	}
	return perPlan[plan]
}
