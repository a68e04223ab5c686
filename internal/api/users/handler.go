package users

import (
	"net/http"
	"time"

	"academy-app/database"
	"academy-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type meResponse struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Lastname      string     `json:"lastname"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	IsVerified    bool       `json:"is_verified"`
	InstituteName string     `json:"institute_name,omitempty"`
	PlanName      *string    `json:"plan_name,omitempty"`
	PlanCode      *string    `json:"plan_code,omitempty"`
	SubStart      *time.Time `json:"subscription_start,omitempty"`
	SubEnd        *time.Time `json:"subscription_end,omitempty"`
	TrialEndAt    *time.Time `json:"trial_end_at,omitempty"`
	Status        string     `json:"status"` // "active" | "trialing" | "expired"
}

func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.Preload("Plan").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	resp := meResponse{
		ID:            user.ID,
		Name:          user.Name,
		Lastname:      user.Lastname,
		Email:         user.Email,
		Role:          user.Role,
		IsVerified:    user.IsVerified,
		InstituteName: user.InstituteName,
		SubStart:      user.SubscriptionStart,
		SubEnd:        user.SubscriptionEnd,
		TrialEndAt:    user.TrialEndAt,
		Status:        subscriptionStatus(user),
	}
	if user.Plan != nil {
		resp.PlanName = &user.Plan.Name
		resp.PlanCode = &user.Plan.Code
	}

	c.JSON(http.StatusOK, resp)
}

// Dashboard is the subscription-gated summary the management UI loads first.
func Dashboard(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.Preload("Plan").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	planName := ""
	if user.Plan != nil {
		planName = user.Plan.Name
	}

	c.JSON(http.StatusOK, gin.H{
		"institute_name":   user.InstituteName,
		"plan":             planName,
		"status":           subscriptionStatus(user),
		"subscription_end": user.SubscriptionEnd,
	})
}

func subscriptionStatus(user users.User) string {
	now := time.Now()
	if user.SubscriptionEnd != nil && now.Before(*user.SubscriptionEnd) {
		return "active"
	}
	if user.TrialEndAt != nil && now.Before(*user.TrialEndAt) {
		return "trialing"
	}
	return "expired"
}
