package email

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, html string) (string, error) {
	args := m.Called(to, subject, html)
	return args.String(0), args.Error(1)
}

func performSend(t *testing.T, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/send-email", SendEmail)

	raw, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/send-email", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSendEmail(t *testing.T) {
	t.Run("OTP", func(t *testing.T) {
		mailer := new(MockMailer)
		Default = mailer
		mailer.On("Send", "a@b.com", "Your verification code", mock.MatchedBy(func(html string) bool {
			return strings.Contains(html, "123456")
		})).Return("msg_1", nil)

		w := performSend(t, map[string]interface{}{
			"template": "otp",
			"to":       "a@b.com",
			"code":     "123456",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "msg_1", resp["message_id"])
		mailer.AssertExpectations(t)
	})

	t.Run("OTP_MissingCode", func(t *testing.T) {
		mailer := new(MockMailer)
		Default = mailer

		w := performSend(t, map[string]interface{}{
			"template": "otp",
			"to":       "a@b.com",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Credentials", func(t *testing.T) {
		mailer := new(MockMailer)
		Default = mailer
		mailer.On("Send", "a@b.com", "Your trial account is ready", mock.Anything).Return("msg_2", nil)

		w := performSend(t, map[string]interface{}{
			"template": "credentials",
			"to":       "a@b.com",
			"name":     "Asha",
			"username": "asha01",
			"password": "tmp-pass-1",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		mailer.AssertExpectations(t)
	})

	t.Run("Contact_MissingMessage", func(t *testing.T) {
		mailer := new(MockMailer)
		Default = mailer

		w := performSend(t, map[string]interface{}{
			"template": "contact",
			"to":       "a@b.com",
			"name":     "Asha",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownTemplate", func(t *testing.T) {
		mailer := new(MockMailer)
		Default = mailer

		// Malformed input must not fall through to another template.
		w := performSend(t, map[string]interface{}{
			"template": "newsletter",
			"to":       "a@b.com",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Unknown template", resp["error"])
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingTo", func(t *testing.T) {
		mailer := new(MockMailer)
		Default = mailer

		w := performSend(t, map[string]interface{}{
			"template": "otp",
			"code":     "123456",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})
}
