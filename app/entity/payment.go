package entity

import "time"

// Payment links a client-generated order id to the payment created at the
// gateway. Rows are append-only: status is never written back, it is
// re-derived from the gateway on every check.
type Payment struct {
	ID uint64

	OrderID string

	Name  string
	Email string

	PaymentID string

	CreatedAt time.Time
}
