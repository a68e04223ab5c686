package billing

import "time"

// WebhookEvent is a record of a verified gateway delivery.
type WebhookEvent struct {
	ID                uint   `gorm:"primaryKey"`
	Event             string `gorm:"index"`
	RazorpayPaymentID string `gorm:"column:razorpay_payment_id;index"`
	UserEmail         string
	AmountINR         float64 `gorm:"column:amount_inr"`
	PaymentStatus     string
	RawPayload        string `gorm:"type:text"`
	CreatedAt         time.Time
}
