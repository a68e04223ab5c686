package routes

import (
	adminapi "academy-app/internal/api/admin"
	authapi "academy-app/internal/api/auth"
	emailapi "academy-app/internal/api/email"
	ordersapi "academy-app/internal/api/orders"
	paymentsapi "academy-app/internal/api/payments"
	plansapi "academy-app/internal/api/plans"
	usersapi "academy-app/internal/api/users"
	webhookapi "academy-app/internal/api/webhook"
	"academy-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// The webhook must see the exact raw body, so it sits outside the
	// sanitization group.
	r.POST("/razorpay-webhook", webhookapi.RazorpayWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/auth/google", authapi.GoogleStart)
	r.GET("/auth/google/callback", authapi.GoogleCallback)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.POST("/request-otp", authapi.RequestOTP)
	public.POST("/verify-otp", authapi.VerifyOTP)
	public.POST("/register-institute", authapi.RegisterInstitute)

	public.GET("/plans", plansapi.ListPlans)
	public.GET("/razorpay-key", ordersapi.GetRazorpayKey)

	public.POST("/create-order", ordersapi.CreateOrder)
	public.POST("/verify-payment", paymentsapi.VerifyPayment)
	public.POST("/send-email", emailapi.SendEmail)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.GET("/payments", paymentsapi.GetPaymentHistory)
	auth.POST("/change-password", authapi.ChangePassword)

	// Subscribed users
	subscribed := auth.Group("/")
	subscribed.Use(middleware.RequireActiveSubscription())
	subscribed.GET("/dashboard", usersapi.Dashboard)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.POST("/seed-plans", plansapi.SeedPlans)
}
