package users

import (
	"fmt"
	"time"

	"academy-app/internal/domain/plans"

	"gorm.io/gorm"
)

// ActivateSubscription moves a user onto a plan after a captured payment.
// Called by whichever confirmation path lands the payment outcome first,
// so it must be safe to reach from both.
func ActivateSubscription(db *gorm.DB, email, planCode string) error {
	var user User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found for %s: %w", email, err)
	}

	var plan plans.Plan
	if err := db.Where("code = ?", planCode).First(&plan).Error; err != nil {
		return fmt.Errorf("plan not found for code %s: %w", planCode, err)
	}

	now := time.Now()
	var end time.Time
	switch plan.Interval {
	case "year":
		end = now.AddDate(1, 0, 0)
	default:
		end = now.AddDate(0, 1, 0)
	}

	updates := map[string]interface{}{
		"plan_id":            plan.ID,
		"subscription_start": now,
		"subscription_end":   end,
		"trial_start_at":     nil,
		"trial_end_at":       nil,
	}

	if err := db.Model(&User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to activate subscription: %w", err)
	}
	return nil
}
