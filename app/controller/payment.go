package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/realguide/backend/app/factory"
	"github.com/realguide/backend/app/service"
	"github.com/realguide/backend/app/types"
)

type PaymentController struct {
	paymentService *service.PaymentService
	notifier       operatorNotifier
	logger         logrus.FieldLogger
}

func NewPaymentController(paymentService *service.PaymentService, notifier operatorNotifier) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		notifier:       notifier,
		logger:         factory.NewModuleLogger("payments-controller"),
	}
}

func (c *PaymentController) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Hello World!")
}

func (c *PaymentController) Pay(ctx echo.Context) error {
	req, err := types.NewPayRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, c.logger, c.notifier, service.NewError(service.KindValidation, types.ErrRequiredFields.Error()))
	}

	paymentLink, err := c.paymentService.CreatePayment(ctx.Request().Context(), req)
	if err != nil {
		return writeError(ctx, c.logger, c.notifier, err)
	}

	paymentsCreatedTotal.Inc()
	return ctx.JSON(http.StatusOK, &types.PayResponse{PaymentLink: paymentLink})
}

func (c *PaymentController) CheckStatus(ctx echo.Context) error {
	req := types.NewCheckStatusRequestFromContext(ctx)

	if err := c.paymentService.CheckStatus(ctx.Request().Context(), req.OrderID); err != nil {
		statusChecksTotal.WithLabelValues("failure").Inc()
		return writeError(ctx, c.logger, c.notifier, err)
	}

	statusChecksTotal.WithLabelValues("success").Inc()
	return ctx.JSON(http.StatusOK, &types.SuccessResponse{Success: true})
}
