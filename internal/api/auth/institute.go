package auth

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"academy-app/config"
	"academy-app/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var instituteHTTPClient = &http.Client{Timeout: 15 * time.Second}

// RegisterInstitute forwards the institute sign-up payload to the upstream
// registration API. The upstream response body is relayed as-is; only its
// status is normalized to 200/502.
func RegisterInstitute(c *gin.Context) {
	if config.REGISTER_API_URL == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Registration service not configured"})
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil || len(payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	req, err := http.NewRequestWithContext(
		c.Request.Context(),
		http.MethodPost,
		config.REGISTER_API_URL,
		bytes.NewReader(payload),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build request"})
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := instituteHTTPClient.Do(req)
	if err != nil {
		logger.L().Error("institute registration upstream failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Registration service unavailable"})
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Registration service unavailable"})
		return
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.L().Warn("institute registration rejected upstream",
			zap.Int("status", resp.StatusCode),
		)
		c.Data(resp.StatusCode, "application/json", respBody)
		return
	}

	c.Data(http.StatusOK, "application/json", respBody)
}
