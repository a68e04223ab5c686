package webhook

import (
	"fmt"

	"academy-app/database"
	"academy-app/internal/domain/billing"
	"academy-app/internal/logger"

	"go.uber.org/zap"
)

func handlePaymentFailed(entity paymentEntity, rawPayload []byte) error {
	amount := float64(entity.Amount) / 100

	event := billing.WebhookEvent{
		Event:             "payment.failed",
		RazorpayPaymentID: entity.ID,
		UserEmail:         entity.Email,
		AmountINR:         amount,
		PaymentStatus:     entity.Status,
		RawPayload:        string(rawPayload),
	}
	if err := database.DB.Create(&event).Error; err != nil {
		return fmt.Errorf("failed to store webhook event: %w", err)
	}

	method := entity.Method
	payment := billing.Payment{
		UserEmail:         entity.Email,
		PlanCode:          noteString(entity.Notes, "plan"),
		RazorpayOrderID:   entity.OrderID,
		RazorpayPaymentID: entity.ID,
		AmountINR:         amount,
		Currency:          entity.Currency,
		Status:            billing.StatusFailed,
		Method:            &method,
		ConfirmedVia:      "webhook",
	}

	if _, err := billing.RecordOutcome(database.DB, &payment); err != nil {
		return fmt.Errorf("failed to record failed payment: %w", err)
	}

	logger.L().Warn("payment failed via webhook",
		zap.String("payment_id", entity.ID),
		zap.String("email", entity.Email),
		zap.Float64("amount_inr", amount),
	)
	return nil
}
