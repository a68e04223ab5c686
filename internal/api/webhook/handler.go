package webhook

import (
	"encoding/json"
	"io"
	"net/http"

	"academy-app/config"
	"academy-app/internal/infra/razorpay"
	"academy-app/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type paymentEntity struct {
	ID       string                 `json:"id"`
	OrderID  string                 `json:"order_id"`
	Amount   int64                  `json:"amount"`
	Currency string                 `json:"currency"`
	Status   string                 `json:"status"`
	Method   string                 `json:"method"`
	Email    string                 `json:"email"`
	Contact  string                 `json:"contact"`
	Notes    map[string]interface{} `json:"notes"`
}

type envelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity paymentEntity `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// RazorpayWebhook is the server-confirmed payment channel. It is fully
// decoupled from the client verification call and may fire before, after,
// or instead of it; both paths converge on the same payment-status store.
func RazorpayWebhook(c *gin.Context) {
	secret := config.RP_WEBHOOK_SECRET
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	payload, err := readWebhookBody(c, 65536)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	signature := c.GetHeader("x-razorpay-signature")
	if !razorpay.VerifyWebhookSignature(payload, signature, secret) {
		logger.L().Warn("webhook signature verification failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook signature"})
		return
	}

	var event envelope
	if err := json.Unmarshal(payload, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse event"})
		return
	}

	switch event.Event {
	case "payment.captured":
		if err := handlePaymentCaptured(event.Payload.Payment.Entity, payload); err != nil {
			// 500 so the gateway redelivers.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process event"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})

	case "payment.failed":
		if err := handlePaymentFailed(event.Payload.Payment.Entity, payload); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process event"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})

	default:
		// Acknowledge unknown events so the gateway doesn't retry them.
		logger.L().Info("ignoring webhook event", zap.String("event", event.Event))
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	}
}

func readWebhookBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
