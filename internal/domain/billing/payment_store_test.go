package billing

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

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

func capturedPayment() *Payment {
	method := "upi"
	invoiceID := "INV-TEST"
	return &Payment{
		UserEmail:         "a@b.com",
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
		AmountINR:         1999,
		Currency:          "INR",
		Status:            StatusCaptured,
		Method:            &method,
		InvoiceID:         &invoiceID,
		ConfirmedVia:      "client",
	}
}

func TestRecordOutcome_TransitionsPendingRow(t *testing.T) {
	gdb, sqlMock := newMockDB(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(`UPDATE "payments"`).WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	landed, err := RecordOutcome(gdb, capturedPayment())
	require.NoError(t, err)
	assert.True(t, landed)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRecordOutcome_NoOpWhenTerminal(t *testing.T) {
	gdb, sqlMock := newMockDB(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(`UPDATE "payments"`).WillReturnResult(sqlmock.NewResult(0, 0))
	sqlMock.ExpectCommit()
	sqlMock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	landed, err := RecordOutcome(gdb, capturedPayment())
	require.NoError(t, err)
	assert.False(t, landed)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRecordOutcome_InsertsFirstConfirmation(t *testing.T) {
	gdb, sqlMock := newMockDB(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(`UPDATE "payments"`).WillReturnResult(sqlmock.NewResult(0, 0))
	sqlMock.ExpectCommit()
	sqlMock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	sqlMock.ExpectCommit()

	landed, err := RecordOutcome(gdb, capturedPayment())
	require.NoError(t, err)
	assert.True(t, landed)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
