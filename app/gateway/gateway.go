package gateway

import "context"

// StatusSucceeded is the only gateway status treated as a completed payment.
const StatusSucceeded = "succeeded"

type CreatePaymentInput struct {
	IdempotenceKey string

	Amount   string
	Currency string

	// ReturnURL is where the gateway redirects the customer after checkout.
	ReturnURL string

	Description string
	Metadata    map[string]string
}

type CreatePaymentOutput struct {
	PaymentID       string
	ConfirmationURL string
	Status          string
}

type Client interface {
	CreatePayment(ctx context.Context, input *CreatePaymentInput) (*CreatePaymentOutput, error)
	GetPaymentStatus(ctx context.Context, paymentID string) (string, error)
}
