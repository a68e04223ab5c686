package email

import (
	"net/http"

	"academy-app/config"

	"github.com/gin-gonic/gin"
)

const (
	TemplateOTP         = "otp"
	TemplateCredentials = "credentials"
	TemplateWelcome     = "welcome"
	TemplateContact     = "contact"
)

type sendRequest struct {
	Template string `json:"template" binding:"required"`
	To       string `json:"to" binding:"required,email"`

	Name     string `json:"name"`
	Code     string `json:"code"`
	Username string `json:"username"`
	Password string `json:"password"`
	Plan     string `json:"plan"`
	Message  string `json:"message"`
}

// SendEmail dispatches one of the known templates. The template tag is
// matched exhaustively and each variant validates its own fields; an
// unknown tag is a 400, never a silent fallback to another template.
func SendEmail(c *gin.Context) {
	var body sendRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid template/to"})
		return
	}

	var subject, html string

	switch body.Template {
	case TemplateOTP:
		if body.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Code is required for otp template"})
			return
		}
		subject, html = OTPEmail(body.Code)

	case TemplateCredentials:
		if body.Username == "" || body.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required for credentials template"})
			return
		}
		subject, html = CredentialsEmail(body.Name, body.Username, body.Password, config.INS_REG_URL)

	case TemplateWelcome:
		if body.Plan == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Plan is required for welcome template"})
			return
		}
		subject, html = WelcomeEmail(body.Name, body.Plan)

	case TemplateContact:
		if body.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required for contact template"})
			return
		}
		subject, html = ContactEmail(body.Name, body.To, body.Message)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown template"})
		return
	}

	id, err := Default.Send(body.To, subject, html)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message_id": id})
}
