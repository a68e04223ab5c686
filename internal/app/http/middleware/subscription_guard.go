package middleware

import (
	"net/http"
	"time"

	"academy-app/database"
	"academy-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequireActiveSubscription gates dashboard routes on a live subscription
// or an unexpired trial.
func RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		var user users.User

		if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Subscription not found or expired",
			})
			return
		}

		now := time.Now()

		if user.SubscriptionEnd != nil && now.Before(*user.SubscriptionEnd) {
			c.Next()
			return
		}
		if user.TrialEndAt != nil && now.Before(*user.TrialEndAt) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
			"error": "Your subscription has expired",
		})
	}
}
