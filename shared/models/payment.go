package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is one gateway callback, recorded verbatim. The collection is an
// append-only log: documents are never updated after insertion.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID       string             `bson:"orderId" json:"orderId"`
	TxnID         string             `bson:"txnId" json:"txnId"`
	BankTxnID     string             `bson:"bankTxnId,omitempty" json:"bankTxnId,omitempty"`
	TxnAmount     string             `bson:"txnAmount" json:"txnAmount"`
	Currency      string             `bson:"currency" json:"currency"`
	TxnStatus     string             `bson:"txnStatus" json:"txnStatus"`
	ResultCode    string             `bson:"resultCode,omitempty" json:"resultCode,omitempty"`
	ResultMessage string             `bson:"resultMessage,omitempty" json:"resultMessage,omitempty"`
	PaymentMode   string             `bson:"paymentMode,omitempty" json:"paymentMode,omitempty"`
	GatewayName   string             `bson:"gatewayName,omitempty" json:"gatewayName,omitempty"`
	BankName      string             `bson:"bankName,omitempty" json:"bankName,omitempty"`
	TxnDate       string             `bson:"txnDate,omitempty" json:"txnDate,omitempty"`
	ChecksumHash  string             `bson:"checksumHash,omitempty" json:"checksumHash,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
