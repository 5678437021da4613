package entitlement

import (
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(DigitResolver{}, NewMemoryUsageStore())
}

func TestResolveSubscriptionDeterministic(t *testing.T) {
	e := newTestEngine()

	for _, id := range []string{"user-1", "user-5", "user-0", "abc", ""} {
		first := e.ResolveSubscription(id)
		second := e.ResolveSubscription(id)
		assert.Equal(t, first.Plan, second.Plan, "plan for %q", id)
		assert.Equal(t, first.Status, second.Status, "status for %q", id)
		assert.ElementsMatch(t, first.Features, second.Features)
	}
}

func TestResolveSubscriptionPremiumUser(t *testing.T) {
	e := newTestEngine()

	sub := e.ResolveSubscription("user-5")
	assert.Equal(t, PlanPremium, sub.Plan)
	assert.Equal(t, StatusActive, sub.Status)

	require.NotNil(t, sub.ExpiresAt)
	expected := time.Now().AddDate(0, 0, 30)
	assert.WithinDuration(t, expected, *sub.ExpiresAt, time.Minute)

	assert.Contains(t, sub.Features, "premium-feature")
	assert.NotContains(t, sub.Features, "enterprise-feature")
}

func TestResolveSubscriptionExpiredUser(t *testing.T) {
	e := newTestEngine()

	sub := e.ResolveSubscription("user-0")
	assert.Equal(t, StatusExpired, sub.Status)

	require.NotNil(t, sub.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(-24*time.Hour), *sub.ExpiresAt, time.Minute)

	// Expiry is the caller's policy: the engine still answers feature
	// questions for an expired subscription.
	assert.True(t, e.CheckFeatureAccess("user-0", "basic-feature", sub))
}

func TestResolveSubscriptionPlanByLastDigit(t *testing.T) {
	e := newTestEngine()

	cases := map[string]Plan{
		"u1": PlanFree,
		"u2": PlanFree,
		"u3": PlanBasic,
		"u4": PlanBasic,
		"u6": PlanPremium,
		"u7": PlanEnterprise,
		"u9": PlanEnterprise,
		"ux": PlanFree,
	}
	for id, want := range cases {
		assert.Equal(t, want, e.ResolveSubscription(id).Plan, "user %q", id)
	}
}

func TestCheckFeatureAccessEnterpriseBypass(t *testing.T) {
	e := newTestEngine()

	sub := Subscription{Plan: PlanEnterprise, Status: StatusActive}
	assert.True(t, e.CheckFeatureAccess("u7", "enterprise-feature", sub))
	assert.True(t, e.CheckFeatureAccess("u7", "feature-nobody-configured", sub))

	for _, plan := range []Plan{PlanFree, PlanBasic, PlanPremium} {
		sub := Subscription{Plan: plan, Status: StatusActive}
		assert.False(t, e.CheckFeatureAccess("u1", "enterprise-feature", sub), "plan %s", plan)
	}
}

func TestCheckFeatureAccessUnknownFeatureDenied(t *testing.T) {
	e := newTestEngine()

	for _, plan := range []Plan{PlanFree, PlanBasic, PlanPremium} {
		sub := Subscription{Plan: plan, Status: StatusActive}
		assert.False(t, e.CheckFeatureAccess("u", "no-such-feature", sub), "plan %s", plan)
	}
}

func TestCheckFeatureAccessMatrix(t *testing.T) {
	e := newTestEngine()

	free := Subscription{Plan: PlanFree}
	basic := Subscription{Plan: PlanBasic}
	premium := Subscription{Plan: PlanPremium}

	assert.False(t, e.CheckFeatureAccess("u", "csv-export", free))
	assert.True(t, e.CheckFeatureAccess("u", "csv-export", basic))
	assert.True(t, e.CheckFeatureAccess("u", "premium-feature", premium))
	assert.False(t, e.CheckFeatureAccess("u", "premium-feature", basic))
}

func TestUsageStartsAtZero(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, int64(0), e.CurrentUsage("nobody", UsageAPICalls))
}

func TestRecordUsageAccumulates(t *testing.T) {
	e := newTestEngine()

	e.RecordUsage("u1", UsageAPICalls, 5)
	e.RecordUsage("u1", UsageAPICalls, 3)
	assert.Equal(t, int64(8), e.CurrentUsage("u1", UsageAPICalls))

	// Separate keys stay separate.
	assert.Equal(t, int64(0), e.CurrentUsage("u1", UsageStorage))
	assert.Equal(t, int64(0), e.CurrentUsage("u2", UsageAPICalls))
}

func TestRecordUsageIgnoresNegativeDelta(t *testing.T) {
	e := newTestEngine()

	e.RecordUsage("u1", UsageAPICalls, 10)
	e.RecordUsage("u1", UsageAPICalls, -4)
	assert.Equal(t, int64(10), e.CurrentUsage("u1", UsageAPICalls))
}

func TestUsageLimits(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, int64(100), e.UsageLimit("u", UsageAPICalls, PlanFree))
	assert.Equal(t, int64(math.MaxInt64), e.UsageLimit("u", UsageAPICalls, PlanEnterprise))
	assert.Equal(t, int64(0), e.UsageLimit("u", "unknown-type", PlanPremium))
}

func TestConcurrentIncrementsAreNotLost(t *testing.T) {
	store := NewMemoryUsageStore()
	e := NewEngine(DigitResolver{}, store)

	const workers = 16
	const perWorker = 250

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				e.RecordUsage("u5", UsageAPICalls, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(workers*perWorker), e.CurrentUsage("u5", UsageAPICalls))
}

func TestFeaturesDerivedFromMatrix(t *testing.T) {
	e := newTestEngine()

	for plan, id := range map[Plan]string{PlanFree: "u1", PlanBasic: "u3", PlanPremium: "u5", PlanEnterprise: "u7"} {
		sub := e.ResolveSubscription(id)
		require.Equal(t, plan, sub.Plan)
		for _, feature := range sub.Features {
			allowed := featureMatrix[feature]
			assert.Contains(t, allowed, plan, fmt.Sprintf("feature %s listed for plan %s", feature, plan))
		}
	}
}
