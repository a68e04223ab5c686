package plans

// Catalog is the source-defined plan list. Plans are immutable at runtime;
// the rows in Postgres are a seeded mirror of this slice.
func Catalog() []Plan {
	return []Plan{
		{
			Code:     "basic",
			Name:     "Basic Plan",
			PriceINR: 999,
			Interval: "month",
			Features: []string{
				"Up to 100 students",
				"Class scheduling",
				"Email support",
			},
		},
		{
			Code:     "standard",
			Name:     "Standard Plan",
			PriceINR: 1499,
			Interval: "month",
			Features: []string{
				"Up to 500 students",
				"Class scheduling",
				"Live event calendar",
				"Priority email support",
			},
		},
		{
			Code:     "premium",
			Name:     "Premium Plan",
			PriceINR: 1999,
			Interval: "month",
			Features: []string{
				"Unlimited students",
				"Class scheduling",
				"Live event calendar",
				"Custom branding",
				"Phone and email support",
			},
		},
	}
}

// ByCode returns the catalog entry for a plan code.
func ByCode(code string) (Plan, bool) {
	for _, p := range Catalog() {
		if p.Code == code {
			return p, true
		}
	}
	return Plan{}, false
}
