package plans

type Plan struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Code     string   `gorm:"column:code;not null;uniqueIndex:idx_plans_code" json:"code"`
	Name     string   `json:"name"`
	PriceINR float64  `gorm:"column:price_inr" json:"price_inr"`
	Interval string   `json:"interval"` // "month" | "year"
	Features []string `gorm:"serializer:json" json:"features"`
}
