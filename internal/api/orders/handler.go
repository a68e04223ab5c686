package orders

import (
	"net/http"

	"academy-app/config"
	"academy-app/internal/infra/razorpay"

	"github.com/gin-gonic/gin"
)

// CreateOrder creates a gateway order for a checkout attempt. Amount is a
// positive integer in rupees; the gateway wants paise. Receipt uniqueness
// is the caller's responsibility — retries with a fresh receipt create
// duplicate orders on the gateway side.
func CreateOrder(c *gin.Context) {
	var body struct {
		Amount  int64                  `json:"amount"`
		Receipt string                 `json:"receipt"`
		Notes   map[string]interface{} `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if body.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount is required and must be positive"})
		return
	}
	if body.Receipt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Receipt is required"})
		return
	}

	order, err := razorpay.Default.CreateOrder(body.Amount*100, body.Receipt, body.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
		"key_id":   config.RP_KEY_ID,
	})
}

// GetRazorpayKey exposes the public key id the hosted checkout widget needs.
func GetRazorpayKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"key": config.RP_KEY_ID})
}
