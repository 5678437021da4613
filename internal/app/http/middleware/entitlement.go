package middleware

import (
	"net/http"
	"strconv"

	"prompt-vault/internal/domain/apperrors"
	"prompt-vault/internal/domain/entitlement"

	"github.com/gin-gonic/gin"
)

// RequireFeature resolves the caller's subscription and rejects the request
// before the handler runs when the plan does not unlock the feature. An
// expired subscription is rejected first (402), a plan without the feature
// second (403). The engine itself never consults status; that check is this
// boundary's policy.
func RequireFeature(engine *entitlement.Engine, feature string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(CtxUserID)
		sub := engine.ResolveSubscription(userID)

		if sub.Status == entitlement.StatusExpired {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "Your subscription has expired",
				"kind":  "subscription_expired",
			})
			return
		}

		if !engine.CheckFeatureAccess(userID, feature, sub) {
			err := apperrors.Forbidden("Feature not available on your plan").
				WithDetails("feature: " + feature)
			abortWith(c, err)
			return
		}

		c.Set("subscription_plan", string(sub.Plan))
		c.Next()
	}
}

// MeterUsage records one unit of the usage type per request and sets
// advisory quota headers. Requests are refused with 429 only once the
// recorded count has passed the plan ceiling; a racing read may let one
// extra request through, which is acceptable for advisory accounting.
func MeterUsage(engine *entitlement.Engine, usageType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(CtxUserID)
		sub := engine.ResolveSubscription(userID)
		limit := engine.UsageLimit(userID, usageType, sub.Plan)

		if engine.CurrentUsage(userID, usageType) >= limit {
			abortWith(c, apperrors.QuotaExceeded("Usage limit reached for your plan").
				WithDetails("usage type: "+usageType))
			return
		}

		engine.RecordUsage(userID, usageType, 1)

		used := engine.CurrentUsage(userID, usageType)
		remaining := limit - used
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-Usage-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-Usage-Remaining", strconv.FormatInt(remaining, 10))

		c.Next()
	}
}
