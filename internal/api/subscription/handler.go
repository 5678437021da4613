package subscription

import (
	"math"
	"net/http"

	"prompt-vault/internal/domain/entitlement"

	"github.com/gin-gonic/gin"
)

// GetSubscription returns the caller's resolved subscription with the
// derived feature set.
func GetSubscription(c *gin.Context) {
	userID := c.GetString("user_id")
	sub := entitlement.Default.ResolveSubscription(userID)
	c.JSON(http.StatusOK, sub)
}

type usageEntry struct {
	Used      int64 `json:"used"`
	Limit     int64 `json:"limit"`
	Unlimited bool  `json:"unlimited"`
}

// GetUsage reports the caller's recorded usage against the plan ceilings
// for every metered resource.
func GetUsage(c *gin.Context) {
	userID := c.GetString("user_id")
	engine := entitlement.Default
	sub := engine.ResolveSubscription(userID)

	usage := map[string]usageEntry{}
	for _, usageType := range []string{entitlement.UsageAPICalls, entitlement.UsageStorage} {
		limit := engine.UsageLimit(userID, usageType, sub.Plan)
		usage[usageType] = usageEntry{
			Used:      engine.CurrentUsage(userID, usageType),
			Limit:     limit,
			Unlimited: limit == math.MaxInt64,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"plan":  sub.Plan,
		"usage": usage,
	})
}
