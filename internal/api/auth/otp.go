package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"academy-app/database"
	"academy-app/internal/api/email"
	"academy-app/internal/domain/users"
	"academy-app/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = 10 * time.Minute

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// issueOTP replaces any active code for the user, stores the bcrypt hash
// and emails the plaintext code.
func issueOTP(user users.User, purpose string) error {
	code, err := generateOTPCode()
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	database.DB.Where("user_id = ?", user.ID).Delete(&users.OtpCode{})

	otp := users.OtpCode{
		UserID:    user.ID,
		CodeHash:  string(hash),
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := database.DB.Create(&otp).Error; err != nil {
		return err
	}

	subject, html := email.OTPEmail(code)
	if _, err := email.Default.Send(user.Email, subject, html); err != nil {
		return err
	}

	logger.L().Info("otp issued",
		zap.Uint("user_id", user.ID),
		zap.String("purpose", purpose),
	)
	return nil
}

func RequestOTP(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid email"})
		return
	}

	var user users.User
	if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		// Don't expose whether the email exists
		c.JSON(http.StatusOK, gin.H{"message": "If your email exists, you'll receive a code."})
		return
	}

	purpose := "login"
	if !user.IsVerified {
		purpose = "verify_email"
	}

	if err := issueOTP(user, purpose); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If your email exists, you'll receive a code."})
}

func VerifyOTP(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" || body.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and code are required"})
		return
	}

	var user users.User
	if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired code"})
		return
	}

	var otp users.OtpCode
	if err := database.DB.Where("user_id = ?", user.ID).First(&otp).Error; err != nil ||
		otp.ExpiresAt.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired code"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(body.Code)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired code"})
		return
	}

	// One shot: a code never verifies twice.
	database.DB.Delete(&otp)

	if !user.IsVerified {
		database.DB.Model(&users.User{}).Where("id = ?", user.ID).Update("is_verified", true)
		user.IsVerified = true
	}

	tokenString, err := issueAppJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString, "verified": true})
}
