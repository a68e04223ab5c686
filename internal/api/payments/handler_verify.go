package payments

import (
	"net/http"

	"academy-app/config"
	"academy-app/database"
	"academy-app/internal/domain/billing"
	"academy-app/internal/domain/users"
	"academy-app/internal/infra/razorpay"
	"academy-app/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type planDetails struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type verifyRequest struct {
	RazorpayOrderID   string      `json:"razorpay_order_id"`
	RazorpayPaymentID string      `json:"razorpay_payment_id"`
	RazorpaySignature string      `json:"razorpay_signature"`
	UserEmail         string      `json:"user_email"`
	PlanDetails       planDetails `json:"plan_details"`
}

// VerifyPayment authenticates the checkout callback. The signature check
// happens before any gateway or database access: a tampered callback must
// produce no side effects at all.
func VerifyPayment(c *gin.Context) {
	var body verifyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	if body.RazorpayOrderID == "" || body.RazorpayPaymentID == "" || body.RazorpaySignature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing payment verification fields"})
		return
	}

	if !razorpay.VerifyPaymentSignature(
		body.RazorpayOrderID,
		body.RazorpayPaymentID,
		body.RazorpaySignature,
		config.RP_KEY_SECRET,
	) {
		logger.L().Warn("payment signature mismatch",
			zap.String("order_id", body.RazorpayOrderID),
			zap.String("payment_id", body.RazorpayPaymentID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Payment verification failed"})
		return
	}

	details, err := razorpay.Default.FetchPayment(body.RazorpayPaymentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch payment details"})
		return
	}

	amount := float64(details.Amount) / 100

	email := body.UserEmail
	if email == "" {
		email = details.Email
	}
	planName := body.PlanDetails.Name
	if planName == "" {
		planName = body.PlanDetails.Code
	}

	invoice := billing.NewInvoice(
		details.ID,
		details.OrderID,
		amount,
		details.Currency,
		details.Status,
		details.Method,
		email,
		planName,
	)

	method := details.Method
	payment := billing.Payment{
		UserEmail:         email,
		PlanCode:          body.PlanDetails.Code,
		RazorpayOrderID:   details.OrderID,
		RazorpayPaymentID: details.ID,
		AmountINR:         amount,
		Currency:          details.Currency,
		Status:            billing.StatusCaptured,
		Method:            &method,
		InvoiceID:         &invoice.InvoiceID,
		ConfirmedVia:      "client",
	}

	landed, err := billing.RecordOutcome(database.DB, &payment)
	if err != nil {
		logger.L().Error("failed to record payment outcome",
			zap.String("payment_id", details.ID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to record payment"})
		return
	}

	if landed && body.PlanDetails.Code != "" {
		if err := users.ActivateSubscription(database.DB, email, body.PlanDetails.Code); err != nil {
			// Payment is already confirmed; surface the failure server-side
			// and let the webhook path or support resolve activation.
			logger.L().Error("subscription activation failed",
				zap.String("payment_id", details.ID),
				zap.String("email", email),
				zap.Error(err),
			)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"verified": true,
		"invoice":  invoice,
	})
}
