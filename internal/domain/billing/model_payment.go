package billing

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	StatusCreated  = "created"
	StatusCaptured = "captured"
	StatusFailed   = "failed"
)

// Payment is the idempotent payment-status store shared by the client
// verification path and the webhook path. Rows are keyed by the gateway
// payment id; whichever path confirms first creates the row, the other
// becomes a no-op.
type Payment struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserEmail         string    `gorm:"index" json:"user_email"`
	PlanCode          string    `json:"plan_code"`
	RazorpayOrderID   string    `gorm:"column:razorpay_order_id;index" json:"razorpay_order_id"`
	RazorpayPaymentID string    `gorm:"column:razorpay_payment_id;not null;uniqueIndex:idx_payments_rp_payment_id" json:"razorpay_payment_id"`
	AmountINR         float64   `gorm:"column:amount_inr" json:"amount_inr"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	Method            *string   `json:"method,omitempty"`
	InvoiceID         *string   `json:"invoice_id,omitempty"`
	ConfirmedVia      string    `gorm:"column:confirmed_via" json:"confirmed_via"` // "client" | "webhook"
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RecordOutcome applies a compare-and-set transition for the payment row.
// Terminal statuses never regress, so a webhook delivery arriving after the
// client already confirmed (or the reverse) does not double-apply side
// effects. Returns true when this call was the one that landed the outcome.
func RecordOutcome(db *gorm.DB, p *Payment) (bool, error) {
	res := db.Model(&Payment{}).
		Where("razorpay_payment_id = ? AND status NOT IN ?",
			p.RazorpayPaymentID, []string{StatusCaptured, StatusFailed}).
		Updates(map[string]interface{}{
			"status":        p.Status,
			"method":        p.Method,
			"invoice_id":    p.InvoiceID,
			"confirmed_via": p.ConfirmedVia,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	if err := db.Model(&Payment{}).
		Where("razorpay_payment_id = ?", p.RazorpayPaymentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		// The other path already reached a terminal status.
		return false, nil
	}

	if err := db.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the insert race to the other path.
			return false, nil
		}
		return false, err
	}
	return true, nil
}
