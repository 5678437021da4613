package entitlement

import "time"

// Resolver maps a user ID to their subscription. The stub below derives the
// plan from the identifier itself; a billing-backed implementation satisfies
// the same interface without touching callers.
type Resolver interface {
	Resolve(userID string) Subscription
}

// DigitResolver is the deterministic reference policy: the last character of
// the user ID selects plan and status.
//
//	0    -> basic, expired (ended a day ago)
//	1-2  -> free
//	3-4  -> basic
//	5-6  -> premium
//	7-9  -> enterprise
//	else -> free
type DigitResolver struct{}

func (DigitResolver) Resolve(userID string) Subscription {
	plan := PlanFree
	status := StatusActive

	if userID != "" {
		switch userID[len(userID)-1] {
		case '0':
			plan = PlanBasic
			status = StatusExpired
		case '3', '4':
			plan = PlanBasic
		case '5', '6':
			plan = PlanPremium
		case '7', '8', '9':
			plan = PlanEnterprise
		}
	}

	expires := time.Now().AddDate(0, 0, 30)
	if status == StatusExpired {
		expires = time.Now().Add(-24 * time.Hour)
	}

	return Subscription{
		Plan:      plan,
		Status:    status,
		ExpiresAt: &expires,
		Features:  featuresFor(plan),
	}
}
