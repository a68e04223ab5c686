package admin

import (
	"net/http"
	"time"

	"academy-app/database"
	"academy-app/internal/domain/billing"
	"academy-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID                uint       `json:"id"`
	Name              string     `json:"name"`
	Lastname          string     `json:"lastname"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	IsVerified        bool       `json:"is_verified"`
	InstituteName     string     `json:"institute_name,omitempty"`
	PlanName          *string    `json:"plan_name,omitempty"`
	SubscriptionStart *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd   *time.Time `json:"subscription_end,omitempty"`
}

type AdminPayment struct {
	ID           uint    `json:"id"`
	Email        string  `json:"email"`
	PlanCode     string  `json:"plan_code,omitempty"`
	AmountINR    float64 `json:"amount_inr"`
	Status       string  `json:"status"`
	ConfirmedVia string  `json:"confirmed_via,omitempty"`
	InvoiceID    *string `json:"invoice_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type AdminStats struct {
	TotalUsers    int64          `json:"total_users"`
	TotalRevenue  float64        `json:"total_revenue"`
	RecentRevenue float64        `json:"recent_revenue"`
	UsersPerPlan  map[string]int `json:"users_per_plan"`
}

func AdminDashboard(c *gin.Context) {
	var stats AdminStats
	stats.UsersPerPlan = map[string]int{}

	if err := database.DB.Model(&users.User{}).Count(&stats.TotalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	var captured []billing.Payment
	if err := database.DB.Where("status = ?", billing.StatusCaptured).Find(&captured).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	cutoff := time.Now().AddDate(0, -1, 0)
	for _, p := range captured {
		stats.TotalRevenue += p.AmountINR
		if p.CreatedAt.After(cutoff) {
			stats.RecentRevenue += p.AmountINR
		}
	}

	var withPlan []users.User
	if err := database.DB.Preload("Plan").Where("plan_id IS NOT NULL").Find(&withPlan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	for _, u := range withPlan {
		if u.Plan != nil {
			stats.UsersPerPlan[u.Plan.Name]++
		}
	}

	c.JSON(http.StatusOK, stats)
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Preload("Plan").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var adminUsers []AdminUser
	for _, u := range all {
		var planName *string
		if u.Plan != nil {
			planName = &u.Plan.Name
		}

		adminUsers = append(adminUsers, AdminUser{
			ID:                u.ID,
			Name:              u.Name,
			Lastname:          u.Lastname,
			Email:             u.Email,
			Role:              u.Role,
			IsVerified:        u.IsVerified,
			InstituteName:     u.InstituteName,
			PlanName:          planName,
			SubscriptionStart: u.SubscriptionStart,
			SubscriptionEnd:   u.SubscriptionEnd,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

func ListAllPayments(c *gin.Context) {
	var all []billing.Payment
	if err := database.DB.Order("created_at DESC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	var adminPayments []AdminPayment
	for _, p := range all {
		adminPayments = append(adminPayments, AdminPayment{
			ID:           p.ID,
			Email:        p.UserEmail,
			PlanCode:     p.PlanCode,
			AmountINR:    p.AmountINR,
			Status:       p.Status,
			ConfirmedVia: p.ConfirmedVia,
			InvoiceID:    p.InvoiceID,
			CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, adminPayments)
}

func GetUserDetails(c *gin.Context) {
	id := c.Param("id")

	var user users.User
	if err := database.DB.Preload("Plan").First(&user, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.
		Where("user_email = ?", user.Email).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     user,
		"payments": payments,
	})
}
