package payments

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"academy-app/config"
	"academy-app/database"
	"academy-app/internal/infra/razorpay"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateOrder(amountPaise int64, receipt string, notes map[string]interface{}) (*razorpay.Order, error) {
	args := m.Called(amountPaise, receipt, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*razorpay.Order), args.Error(1)
}

func (m *MockGateway) FetchPayment(paymentID string) (*razorpay.PaymentDetails, error) {
	args := m.Called(paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*razorpay.PaymentDetails), args.Error(1)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, sqlMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return gdb, sqlMock
}

func performVerify(t *testing.T, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/verify-payment", VerifyPayment)

	raw, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/verify-payment", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyPayment_TamperedSignature(t *testing.T) {
	config.RP_KEY_SECRET = "secret"
	mockGw := new(MockGateway)
	razorpay.Default = mockGw

	w := performVerify(t, map[string]interface{}{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
		"user_email":          "a@b.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Payment verification failed", resp["error"])

	// No side effect on mismatch: payment details must never be fetched.
	mockGw.AssertNotCalled(t, "FetchPayment", mock.Anything)
}

func TestVerifyPayment_MissingFields(t *testing.T) {
	config.RP_KEY_SECRET = "secret"
	mockGw := new(MockGateway)
	razorpay.Default = mockGw

	w := performVerify(t, map[string]interface{}{
		"razorpay_order_id": "order_1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockGw.AssertNotCalled(t, "FetchPayment", mock.Anything)
}

func TestVerifyPayment_ValidSignature(t *testing.T) {
	config.RP_KEY_SECRET = "secret"

	mockGw := new(MockGateway)
	razorpay.Default = mockGw
	mockGw.On("FetchPayment", "pay_1").Return(&razorpay.PaymentDetails{
		ID:       "pay_1",
		OrderID:  "order_1",
		Amount:   199900,
		Currency: "INR",
		Status:   "captured",
		Method:   "upi",
		Email:    "a@b.com",
	}, nil)

	gdb, sqlMock := newMockDB(t)
	oldDB := database.DB
	database.DB = gdb
	defer func() { database.DB = oldDB }()

	// RecordOutcome: CAS update misses, count finds nothing, insert lands.
	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(`UPDATE "payments"`).WillReturnResult(sqlmock.NewResult(0, 0))
	sqlMock.ExpectCommit()
	sqlMock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	sqlMock.ExpectCommit()

	signature := razorpay.PaymentSignature("order_1", "pay_1", "secret")

	w := performVerify(t, map[string]interface{}{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  signature,
		"user_email":          "a@b.com",
		"plan_details":        map[string]interface{}{"name": "Premium Plan"},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success  bool `json:"success"`
		Verified bool `json:"verified"`
		Invoice  struct {
			InvoiceID string  `json:"invoice_id"`
			PaymentID string  `json:"payment_id"`
			OrderID   string  `json:"order_id"`
			Amount    float64 `json:"amount"`
			Plan      string  `json:"plan"`
			CGST      float64 `json:"cgst"`
			SGST      float64 `json:"sgst"`
			TotalGST  float64 `json:"total_gst"`
		} `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.True(t, resp.Verified)
	assert.Equal(t, "pay_1", resp.Invoice.PaymentID)
	assert.Equal(t, "order_1", resp.Invoice.OrderID)
	assert.Equal(t, 1999.0, resp.Invoice.Amount)
	assert.Equal(t, "Premium Plan", resp.Invoice.Plan)
	assert.InDelta(t, 1999*0.18, resp.Invoice.TotalGST, 0.001)
	assert.Equal(t, resp.Invoice.CGST+resp.Invoice.SGST, resp.Invoice.TotalGST)
	assert.NotEmpty(t, resp.Invoice.InvoiceID)

	mockGw.AssertExpectations(t)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
