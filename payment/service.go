// Package payment handles gateway transaction initiation and keeps the
// append-only log of gateway callbacks. The checksum algorithm and the
// gateway wire protocol live behind collaborator interfaces.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/apperr"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

// Signer produces and verifies gateway checksums. The concrete algorithm is
// the gateway vendor's and is injected by the hosting process.
type Signer interface {
	Sign(body []byte) (string, error)
	Verify(params map[string]string, signature string) (bool, error)
}

// PaymentStore is the append-only callback log. Lookup returns (nil, nil)
// when no record matches.
type PaymentStore interface {
	Append(ctx context.Context, payment *models.Payment) error
	FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
}

type Service struct {
	records    PaymentStore
	gateway    Gateway
	signer     Signer
	merchantID string
	now        func() time.Time
}

func NewService(records PaymentStore, gateway Gateway, signer Signer, merchantID string) *Service {
	return &Service{
		records:    records,
		gateway:    gateway,
		signer:     signer,
		merchantID: merchantID,
		now:        time.Now,
	}
}

// Initiate starts a gateway transaction and returns the gateway's response
// verbatim for the client to continue the payment flow with.
func (s *Service) Initiate(ctx context.Context, amount float64, email, phone string) (map[string]any, error) {
	if amount <= 0 {
		return nil, apperr.Validation("amount must be positive")
	}
	if email == "" {
		return nil, apperr.Validation("email is required")
	}

	orderRef := "ORDER_" + uuid.NewString()

	body := map[string]any{
		"requestType": "Payment",
		"mid":         s.merchantID,
		"orderId":     orderRef,
		"txnAmount": map[string]string{
			"value":    fmt.Sprintf("%.2f", amount),
			"currency": "INR",
		},
		"userInfo": map[string]string{
			"custId": email,
			"mobile": phone,
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	signature, err := s.signer.Sign(payload)
	if err != nil {
		return nil, apperr.Upstream("failed to sign transaction", err)
	}

	response, err := s.gateway.Initiate(ctx, InitiateRequest{
		OrderID:   orderRef,
		Body:      body,
		Signature: signature,
	})
	if err != nil {
		return nil, apperr.Upstream("payment gateway request failed", err)
	}
	return response, nil
}

// RecordCallback verifies a gateway callback and appends it to the payment
// log. Returns the transaction id for the success redirect. The log is
// append-only: repeated callbacks for the same order each get a record.
func (s *Service) RecordCallback(ctx context.Context, params map[string]string) (string, error) {
	signature := params["CHECKSUMHASH"]

	valid, err := s.signer.Verify(params, signature)
	if err != nil {
		return "", apperr.Upstream("checksum verification failed", err)
	}
	if !valid {
		return "", apperr.Validation("payment verification failed")
	}

	record := &models.Payment{
		OrderID:       params["ORDERID"],
		TxnID:         params["TXNID"],
		BankTxnID:     params["BANKTXNID"],
		TxnAmount:     params["TXNAMOUNT"],
		Currency:      params["CURRENCY"],
		TxnStatus:     params["STATUS"],
		ResultCode:    params["RESPCODE"],
		ResultMessage: params["RESPMSG"],
		PaymentMode:   params["PAYMENTMODE"],
		GatewayName:   params["GATEWAYNAME"],
		BankName:      params["BANKNAME"],
		TxnDate:       params["TXNDATE"],
		ChecksumHash:  signature,
		CreatedAt:     s.now(),
	}

	if err := s.records.Append(ctx, record); err != nil {
		return "", err
	}
	return record.TxnID, nil
}

// StatusResult is the caller-facing slice of a payment record.
type StatusResult struct {
	Status string `json:"status"`
	Amount string `json:"amount"`
	Method string `json:"method"`
}

func (s *Service) Status(ctx context.Context, orderID string) (*StatusResult, error) {
	record, err := s.records.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperr.NotFound("payment not found")
	}
	return &StatusResult{
		Status: record.TxnStatus,
		Amount: record.TxnAmount,
		Method: record.PaymentMode,
	}, nil
}
