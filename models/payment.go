package models

import "time"

// PaymentSnapshot records the simulated charge taken at booking time. It is
// written once with the appointment and never mutated; the external refund
// flow only flips the appointment status, not this snapshot.
type PaymentSnapshot struct {
	Amount        float64   `bson:"amount" json:"amount"`
	Currency      string    `bson:"currency" json:"currency"`
	Status        string    `bson:"status" json:"status"` // e.g. "paid"
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	PaidAt        time.Time `bson:"paidAt" json:"paidAt"`
	Method        string    `bson:"method" json:"method"`
}

const (
	PaymentStatusPaid = "paid"
	PaymentMethodCard = "card"
)
