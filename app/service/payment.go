package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/realguide/backend/app/entity"
	"github.com/realguide/backend/app/gateway"
	"github.com/realguide/backend/app/types"
)

const (
	paymentCurrency = "RUB"

	msgPaymentCreateFailed = "Ошибка создания платежа"
	msgPaymentIDNotFound   = "paymentId не найден"
	msgPaymentNotCompleted = "Платеж не оплачен"
	msgStatusCheckFailed   = "Ошибка проверки платежа"
)

type paymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByOrderID(ctx context.Context, orderID string) (*entity.Payment, error)
}

type paymentNotifier interface {
	PaymentCreated(orderID, name, email string)
}

type PaymentService struct {
	paymentRepo paymentRepository
	gateway     gateway.Client
	notifier    paymentNotifier
}

func NewPaymentService(paymentRepo paymentRepository, gatewayClient gateway.Client, notifier paymentNotifier) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		gateway:     gatewayClient,
		notifier:    notifier,
	}
}

// CreatePayment creates a gateway payment and persists the correlation record.
// The order id is generated before the gateway call so a gateway failure
// leaves no orphaned record; a store failure after gateway success is
// surfaced to the caller and not remediated.
func (s *PaymentService) CreatePayment(ctx context.Context, req *types.PayRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", NewError(KindValidation, err.Error())
	}

	orderID := uuid.NewString()
	idempotenceKey := uuid.NewString()

	output, err := s.gateway.CreatePayment(ctx, &gateway.CreatePaymentInput{
		IdempotenceKey: idempotenceKey,
		Amount:         formatAmount(req.Value),
		Currency:       paymentCurrency,
		ReturnURL:      appendOrderID(req.ReturnURL, orderID),
		Description:    fmt.Sprintf("%s, %s", req.Name, req.Email),
		Metadata: map[string]string{
			"orderId": orderID,
			"name":    req.Name,
			"email":   req.Email,
		},
	})
	if err != nil {
		return "", WrapError(KindGateway, msgPaymentCreateFailed, err)
	}
	if output.PaymentID == "" || output.ConfirmationURL == "" {
		return "", NewError(KindGateway, msgPaymentCreateFailed)
	}

	payment := &entity.Payment{
		OrderID:   orderID,
		Name:      req.Name,
		Email:     req.Email,
		PaymentID: output.PaymentID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return "", WrapError(KindStore, msgPaymentCreateFailed, err)
	}

	s.notifier.PaymentCreated(orderID, req.Name, req.Email)

	return output.ConfirmationURL, nil
}

// CheckStatus re-derives the payment outcome from the store and the gateway.
// Nothing is cached or written back.
func (s *PaymentService) CheckStatus(ctx context.Context, orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return NewError(KindValidation, types.ErrOrderIDRequired.Error())
	}

	payment, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return WrapError(KindStore, msgStatusCheckFailed, err)
	}
	if payment == nil || payment.PaymentID == "" {
		return NewError(KindNotFound, msgPaymentIDNotFound)
	}

	status, err := s.gateway.GetPaymentStatus(ctx, payment.PaymentID)
	if err != nil {
		return WrapError(KindGateway, msgStatusCheckFailed, err)
	}
	if status != gateway.StatusSucceeded {
		return NewError(KindPaymentNotCompleted, msgPaymentNotCompleted)
	}

	return nil
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func appendOrderID(returnURL, orderID string) string {
	separator := "?"
	if strings.Contains(returnURL, "?") {
		separator = "&"
	}
	return returnURL + separator + "id=" + url.QueryEscape(orderID)
}
