package types

import (
	"errors"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
)

// Client-facing messages are in Russian, matching the storefront locale.
var (
	ErrRequiredFields  = errors.New("Не переданы обязательные поля")
	ErrEmailFormat     = errors.New("Неправильный формат email")
	ErrOrderIDRequired = errors.New("ID обязателен")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type PayRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Value     float64 `json:"value"`
	ReturnURL string  `json:"returnUrl"`
	Agreement bool    `json:"agreement"`
}

func NewPayRequestFromContext(ctx echo.Context) (*PayRequest, error) {
	var body PayRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(body.Email)
	body.ReturnURL = strings.TrimSpace(body.ReturnURL)

	return &body, nil
}

func (r *PayRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Value <= 0 || r.ReturnURL == "" || !r.Agreement {
		return ErrRequiredFields
	}
	if !emailPattern.MatchString(r.Email) {
		return ErrEmailFormat
	}
	return nil
}

type CheckStatusRequest struct {
	OrderID string
}

func NewCheckStatusRequestFromContext(ctx echo.Context) *CheckStatusRequest {
	return &CheckStatusRequest{
		OrderID: strings.TrimSpace(ctx.QueryParam("id")),
	}
}

func (r *CheckStatusRequest) Validate() error {
	if r.OrderID == "" {
		return ErrOrderIDRequired
	}
	return nil
}

type DownloadRequest struct {
	ID        string `json:"id"`
	UserAgent string `json:"-"`
}

func NewDownloadRequestFromContext(ctx echo.Context) (*DownloadRequest, error) {
	var body DownloadRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.ID = strings.TrimSpace(body.ID)
	body.UserAgent = ctx.Request().UserAgent()

	return &body, nil
}

func (r *DownloadRequest) Validate() error {
	if r.ID == "" {
		return ErrRequiredFields
	}
	return nil
}

type PayResponse struct {
	PaymentLink string `json:"paymentLink"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorBody struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
