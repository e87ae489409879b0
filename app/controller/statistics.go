package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/realguide/backend/app/factory"
	"github.com/realguide/backend/app/service"
	"github.com/realguide/backend/app/types"
)

type StatisticsController struct {
	statisticsService *service.StatisticsService
	notifier          operatorNotifier
	logger            logrus.FieldLogger
}

func NewStatisticsController(statisticsService *service.StatisticsService, notifier operatorNotifier) *StatisticsController {
	return &StatisticsController{
		statisticsService: statisticsService,
		notifier:          notifier,
		logger:            factory.NewModuleLogger("statistics-controller"),
	}
}

func (c *StatisticsController) RecordDownload(ctx echo.Context) error {
	req, err := types.NewDownloadRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, c.logger, c.notifier, service.NewError(service.KindValidation, types.ErrRequiredFields.Error()))
	}

	if err := c.statisticsService.RecordDownload(ctx.Request().Context(), req); err != nil {
		return writeError(ctx, c.logger, c.notifier, err)
	}

	downloadsRecordedTotal.WithLabelValues("download").Inc()
	return ctx.JSON(http.StatusOK, &types.SuccessResponse{Success: true})
}

func (c *StatisticsController) RecordPreviewDownload(ctx echo.Context) error {
	if err := c.statisticsService.RecordPreviewDownload(ctx.Request().Context(), ctx.Request().UserAgent()); err != nil {
		return writeError(ctx, c.logger, c.notifier, err)
	}

	downloadsRecordedTotal.WithLabelValues("preview").Inc()
	return ctx.JSON(http.StatusOK, &types.SuccessResponse{Success: true})
}
