package users

import "time"

// OtpCode is a short-lived email OTP. Only the bcrypt hash is stored; one
// active code per user.
type OtpCode struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex"`
	User      User   `gorm:"constraint:OnDelete:CASCADE"`
	CodeHash  string `gorm:"not null"`
	Purpose   string `gorm:"index"` // "verify_email" | "login"
	ExpiresAt time.Time
	CreatedAt time.Time
}
