package entitlement

// featureMatrix maps a feature name to the plans allowed to use it.
// Read-only after process start. Adding a feature or plan is a data edit
// here, not a new code branch.
//
// Enterprise is deliberately absent from most rows: it is granted
// everything by policy override in CheckFeatureAccess, not by the matrix.
var featureMatrix = map[string][]Plan{
	"basic-feature":      {PlanBasic, PlanPremium, PlanEnterprise},
	"premium-feature":    {PlanPremium, PlanEnterprise},
	"enterprise-feature": {PlanEnterprise},
	"csv-export":         {PlanBasic, PlanPremium, PlanEnterprise},
	"api-access":         {PlanPremium, PlanEnterprise},
	"private-prompts":    {PlanBasic, PlanPremium, PlanEnterprise},
}

// featuresFor returns every feature whose allow-list contains the plan.
func featuresFor(plan Plan) []string {
	features := []string{}
	for name, allowed := range featureMatrix {
		for _, p := range allowed {
			if p == plan {
				features = append(features, name)
				break
			}
		}
	}
	return features
}
