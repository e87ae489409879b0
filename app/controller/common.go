package controller

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/realguide/backend/app/factory"
	"github.com/realguide/backend/app/service"
	"github.com/realguide/backend/app/types"
)

// Metrics
var (
	paymentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backend_payments_created_total",
		Help: "Payments successfully created at the gateway",
	})

	statusChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backend_status_checks_total",
		Help: "Payment status checks by outcome",
	}, []string{"result"})

	downloadsRecordedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backend_downloads_recorded_total",
		Help: "Recorded download statistics events",
	}, []string{"kind"})

	requestErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backend_request_errors_total",
		Help: "Handler errors by error kind",
	}, []string{"kind"})
)

type operatorNotifier interface {
	Error(text, stack string)
}

// writeError is the single error boundary: every failure is logged, forwarded
// to the operator channel with its stack, and answered with the uniform
// envelope. All error kinds map to HTTP 500 on purpose.
func writeError(ctx echo.Context, logger logrus.FieldLogger, notifier operatorNotifier, err error) error {
	kind := service.KindOf(err)

	factory.LoggerWithContext(logger, ctx).
		WithError(err).
		WithField("kind", kind.String()).
		Error("Request failed")

	requestErrorsTotal.WithLabelValues(kind.String()).Inc()
	notifier.Error(err.Error(), string(debug.Stack()))

	return ctx.JSON(http.StatusInternalServerError, &types.ErrorResponse{
		Error: types.ErrorBody{Message: service.ClientMessage(err)},
	})
}
