package razorpay

import (
	"fmt"

	"academy-app/config"
	"academy-app/internal/logger"

	rzpsdk "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

// Order is a gateway-side record of an intended charge. Amount is in paise.
type Order struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

// PaymentDetails is the gateway's view of a captured/authorized payment.
// Amount is in paise.
type PaymentDetails struct {
	ID       string
	OrderID  string
	Amount   int64
	Currency string
	Status   string
	Method   string
	Email    string
	Contact  string
}

// Gateway wraps the order-creation and payment-fetch calls so handlers can
// be tested against a mock.
type Gateway interface {
	CreateOrder(amountPaise int64, receipt string, notes map[string]interface{}) (*Order, error)
	FetchPayment(paymentID string) (*PaymentDetails, error)
}

// Default is the process-wide gateway, set up once in main.
var Default Gateway

func Init() {
	Default = NewClient(config.RP_KEY_ID, config.RP_KEY_SECRET)
}

type client struct {
	rzp *rzpsdk.Client
}

func NewClient(keyID, keySecret string) Gateway {
	if keyID == "" || keySecret == "" {
		logger.L().Warn("Razorpay credentials are empty")
	}
	return &client{rzp: rzpsdk.NewClient(keyID, keySecret)}
}

func (c *client) CreateOrder(amountPaise int64, receipt string, notes map[string]interface{}) (*Order, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	body, err := c.rzp.Order.Create(data, nil)
	if err != nil {
		logger.L().Error("razorpay order create failed",
			zap.String("receipt", receipt),
			zap.Int64("amount_paise", amountPaise),
			zap.Error(err),
		)
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	order := &Order{
		ID:       asString(body["id"]),
		Amount:   asInt64(body["amount"]),
		Currency: asString(body["currency"]),
		Receipt:  asString(body["receipt"]),
	}
	if order.ID == "" {
		return nil, fmt.Errorf("razorpay order create: response missing id")
	}

	logger.L().Info("razorpay order created",
		zap.String("order_id", order.ID),
		zap.Int64("amount_paise", order.Amount),
	)
	return order, nil
}

func (c *client) FetchPayment(paymentID string) (*PaymentDetails, error) {
	body, err := c.rzp.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		logger.L().Error("razorpay payment fetch failed",
			zap.String("payment_id", paymentID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("razorpay payment fetch: %w", err)
	}

	return &PaymentDetails{
		ID:       asString(body["id"]),
		OrderID:  asString(body["order_id"]),
		Amount:   asInt64(body["amount"]),
		Currency: asString(body["currency"]),
		Status:   asString(body["status"]),
		Method:   asString(body["method"]),
		Email:    asString(body["email"]),
		Contact:  asString(body["contact"]),
	}, nil
}

// The SDK decodes responses into map[string]interface{}; numbers arrive as
// json float64.
func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	}
	return 0
}
