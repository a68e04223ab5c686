package billing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GST is charged at a flat 18%, split evenly into CGST and SGST regardless
// of jurisdiction.
const (
	cgstRate = 0.09
	sgstRate = 0.09
)

// Invoice is synthesized on a successful verification. The invoice itself
// is returned to the client; only its id is attached to the Payment row.
type Invoice struct {
	InvoiceID string    `json:"invoice_id"`
	PaymentID string    `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	Method    string    `json:"method"`
	Email     string    `json:"email"`
	Plan      string    `json:"plan"`
	Date      time.Time `json:"date"`
	CGST      float64   `json:"cgst"`
	SGST      float64   `json:"sgst"`
	TotalGST  float64   `json:"total_gst"`
	Total     float64   `json:"total"`
}

// NewInvoice builds an invoice for a captured payment. amount is in rupees.
func NewInvoice(paymentID, orderID string, amount float64, currency, status, method, email, plan string) Invoice {
	cgst := round2(amount * cgstRate)
	sgst := round2(amount * sgstRate)

	return Invoice{
		InvoiceID: newInvoiceID(),
		PaymentID: paymentID,
		OrderID:   orderID,
		Amount:    amount,
		Currency:  currency,
		Status:    status,
		Method:    method,
		Email:     email,
		Plan:      plan,
		Date:      time.Now(),
		CGST:      cgst,
		SGST:      sgst,
		TotalGST:  cgst + sgst,
		Total:     round2(amount + cgst + sgst),
	}
}

func newInvoiceID() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:12])
	return fmt.Sprintf("INV-%s", short)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
