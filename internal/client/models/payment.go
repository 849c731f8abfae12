package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a read-only gateway record. Amounts are rupees.
type Payment struct {
	ID            string          `json:"id"`
	Name          string          `json:"name,omitempty"`
	Email         string          `json:"email,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	CourseName    string          `json:"courseName,omitempty"`
	TransactionID string          `json:"transactionId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt,omitzero"`
}

type paymentWire struct {
	ID            json.RawMessage `json:"id"`
	MongoID       json.RawMessage `json:"_id"`
	UserName      string          `json:"userName"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Amount        json.RawMessage `json:"amount"`
	PaymentStatus string          `json:"paymentStatus"`
	Status        string          `json:"status"`
	CourseName    string          `json:"courseName"`
	Course        string          `json:"course"`
	TransactionID string          `json:"transactionId"`
	CreatedAt     string          `json:"createdAt"`
}

func (p *Payment) UnmarshalJSON(b []byte) error {
	var w paymentWire
	if err := decodeWire(b, &w); err != nil {
		return err
	}

	*p = Payment{
		ID:            firstNonEmpty(looseString(w.ID), looseString(w.MongoID)),
		Name:          firstNonEmpty(w.UserName, w.Name),
		Email:         w.Email,
		Status:        firstNonEmpty(w.PaymentStatus, w.Status, "unknown"),
		CourseName:    firstNonEmpty(w.CourseName, w.Course),
		TransactionID: w.TransactionID,
		Amount:        looseAmount(w.Amount),
		CreatedAt:     parseTimestamp(w.CreatedAt),
	}
	return nil
}

// looseAmount accepts a JSON number or a string such as "₹5,999".
// Anything unparseable counts as zero.
func looseAmount(raw json.RawMessage) decimal.Decimal {
	s := strings.TrimSpace(looseString(raw))
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// DisplayName falls back to "Unknown" for anonymous payments.
func (p Payment) DisplayName() string {
	return firstNonEmpty(p.Name, "Unknown")
}

func (p Payment) Class() PaymentClass {
	return ClassifyPaymentStatus(p.Status)
}
