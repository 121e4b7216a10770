package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/apperr"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

type fakePaymentStore struct {
	records []*models.Payment
}

func (f *fakePaymentStore) Append(_ context.Context, payment *models.Payment) error {
	f.records = append(f.records, payment)
	return nil
}

func (f *fakePaymentStore) FindByOrderID(_ context.Context, orderID string) (*models.Payment, error) {
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].OrderID == orderID {
			clone := *f.records[i]
			return &clone, nil
		}
	}
	return nil, nil
}

type fakeGateway struct {
	lastRequest InitiateRequest
	response    map[string]any
	err         error
}

func (f *fakeGateway) Initiate(_ context.Context, req InitiateRequest) (map[string]any, error) {
	f.lastRequest = req
	return f.response, f.err
}

type fakeSigner struct {
	valid     bool
	signErr   error
	verifyErr error
}

func (f *fakeSigner) Sign([]byte) (string, error) {
	return "sig", f.signErr
}

func (f *fakeSigner) Verify(map[string]string, string) (bool, error) {
	return f.valid, f.verifyErr
}

func successParams() map[string]string {
	return map[string]string{
		"ORDERID":      "ORDER_abc",
		"TXNID":        "TXN001",
		"BANKTXNID":    "BANK001",
		"TXNAMOUNT":    "31859.00",
		"CURRENCY":     "INR",
		"STATUS":       "TXN_SUCCESS",
		"RESPCODE":     "01",
		"RESPMSG":      "Txn Success",
		"PAYMENTMODE":  "UPI",
		"GATEWAYNAME":  "PAYTM",
		"BANKNAME":     "HDFC",
		"TXNDATE":      "2025-06-01 12:00:00.0",
		"CHECKSUMHASH": "sig",
	}
}

func TestInitiateValidation(t *testing.T) {
	svc := NewService(&fakePaymentStore{}, &fakeGateway{}, &fakeSigner{}, "MID123")

	_, err := svc.Initiate(context.Background(), 0, "user@example.com", "9876543210")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.Initiate(context.Background(), 500, "", "9876543210")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestInitiateSignsAndForwards(t *testing.T) {
	gateway := &fakeGateway{response: map[string]any{"body": map[string]any{"txnToken": "tok"}}}
	svc := NewService(&fakePaymentStore{}, gateway, &fakeSigner{}, "MID123")

	response, err := svc.Initiate(context.Background(), 500, "user@example.com", "9876543210")
	require.NoError(t, err)

	assert.Equal(t, gateway.response, response)
	assert.Equal(t, "sig", gateway.lastRequest.Signature)
	assert.Contains(t, gateway.lastRequest.OrderID, "ORDER_")
	assert.Equal(t, "MID123", gateway.lastRequest.Body["mid"])
}

func TestInitiateGatewayFailureIsUpstream(t *testing.T) {
	gateway := &fakeGateway{err: errors.New("connection refused")}
	svc := NewService(&fakePaymentStore{}, gateway, &fakeSigner{}, "MID123")

	_, err := svc.Initiate(context.Background(), 500, "user@example.com", "")
	require.Error(t, err)
	assert.True(t, apperr.IsUpstream(err))
}

func TestRecordCallbackAppendsVerifiedRecord(t *testing.T) {
	store := &fakePaymentStore{}
	svc := NewService(store, &fakeGateway{}, &fakeSigner{valid: true}, "MID123")
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	txnID, err := svc.RecordCallback(context.Background(), successParams())
	require.NoError(t, err)

	assert.Equal(t, "TXN001", txnID)
	require.Len(t, store.records, 1)
	record := store.records[0]
	assert.Equal(t, "ORDER_abc", record.OrderID)
	assert.Equal(t, "TXN_SUCCESS", record.TxnStatus)
	assert.Equal(t, "31859.00", record.TxnAmount)
	assert.Equal(t, "UPI", record.PaymentMode)
	assert.Equal(t, 2025, record.CreatedAt.Year())
}

func TestRecordCallbackRejectsBadSignature(t *testing.T) {
	store := &fakePaymentStore{}
	svc := NewService(store, &fakeGateway{}, &fakeSigner{valid: false}, "MID123")

	_, err := svc.RecordCallback(context.Background(), successParams())
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Empty(t, store.records)
}

func TestRecordCallbackIsAppendOnly(t *testing.T) {
	store := &fakePaymentStore{}
	svc := NewService(store, &fakeGateway{}, &fakeSigner{valid: true}, "MID123")

	_, err := svc.RecordCallback(context.Background(), successParams())
	require.NoError(t, err)
	// A repeated callback for the same order gets its own record
	_, err = svc.RecordCallback(context.Background(), successParams())
	require.NoError(t, err)

	assert.Len(t, store.records, 2)
}

func TestStatus(t *testing.T) {
	store := &fakePaymentStore{}
	svc := NewService(store, &fakeGateway{}, &fakeSigner{valid: true}, "MID123")

	_, err := svc.RecordCallback(context.Background(), successParams())
	require.NoError(t, err)

	result, err := svc.Status(context.Background(), "ORDER_abc")
	require.NoError(t, err)
	assert.Equal(t, "TXN_SUCCESS", result.Status)
	assert.Equal(t, "31859.00", result.Amount)
	assert.Equal(t, "UPI", result.Method)

	_, err = svc.Status(context.Background(), "ORDER_unknown")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
