package webhook

import (
	"fmt"

	"academy-app/database"
	"academy-app/internal/api/email"
	"academy-app/internal/domain/billing"
	"academy-app/internal/domain/users"
	"academy-app/internal/logger"

	"go.uber.org/zap"
)

func handlePaymentCaptured(entity paymentEntity, rawPayload []byte) error {
	amount := float64(entity.Amount) / 100
	planCode := noteString(entity.Notes, "plan")

	event := billing.WebhookEvent{
		Event:             "payment.captured",
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
	invoice := billing.NewInvoice(
		entity.ID,
		entity.OrderID,
		amount,
		entity.Currency,
		entity.Status,
		entity.Method,
		entity.Email,
		planCode,
	)

	payment := billing.Payment{
		UserEmail:         entity.Email,
		PlanCode:          planCode,
		RazorpayOrderID:   entity.OrderID,
		RazorpayPaymentID: entity.ID,
		AmountINR:         amount,
		Currency:          entity.Currency,
		Status:            billing.StatusCaptured,
		Method:            &method,
		InvoiceID:         &invoice.InvoiceID,
		ConfirmedVia:      "webhook",
	}

	landed, err := billing.RecordOutcome(database.DB, &payment)
	if err != nil {
		return fmt.Errorf("failed to record captured payment: %w", err)
	}
	if !landed {
		// Client verification got here first; nothing left to apply.
		logger.L().Info("captured payment already confirmed",
			zap.String("payment_id", entity.ID),
		)
		return nil
	}

	logger.L().Info("payment captured via webhook",
		zap.String("payment_id", entity.ID),
		zap.String("email", entity.Email),
		zap.Float64("amount_inr", amount),
	)

	if planCode != "" && entity.Email != "" {
		if err := users.ActivateSubscription(database.DB, entity.Email, planCode); err != nil {
			logger.L().Error("subscription activation failed",
				zap.String("payment_id", entity.ID),
				zap.Error(err),
			)
		}
	}

	if entity.Email != "" {
		subject, html := email.PaymentConfirmationEmail(
			noteString(entity.Notes, "name"),
			planCode,
			invoice.InvoiceID,
			amount,
		)
		if _, err := email.Default.Send(entity.Email, subject, html); err != nil {
			// Confirmation email is best effort; the payment stands.
			logger.L().Error("payment confirmation email failed",
				zap.String("payment_id", entity.ID),
				zap.Error(err),
			)
		}
	}

	return nil
}

func noteString(notes map[string]interface{}, key string) string {
	if notes == nil {
		return ""
	}
	s, _ := notes[key].(string)
	return s
}
