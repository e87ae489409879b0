package service

import (
	"context"
	"time"

	"github.com/realguide/backend/app/entity"
	"github.com/realguide/backend/app/types"
)

type downloadRepository interface {
	CreateDownload(ctx context.Context, download *entity.Download) error
	CreatePreviewDownload(ctx context.Context, download *entity.PreviewDownload) error
	CountDownloads(ctx context.Context) (int64, error)
	CountPreviewDownloads(ctx context.Context) (int64, error)
}

type downloadNotifier interface {
	FileDownloaded(fileID string)
}

type StatisticsService struct {
	downloadRepo downloadRepository
	notifier     downloadNotifier
}

func NewStatisticsService(downloadRepo downloadRepository, notifier downloadNotifier) *StatisticsService {
	return &StatisticsService{
		downloadRepo: downloadRepo,
		notifier:     notifier,
	}
}

func (s *StatisticsService) RecordDownload(ctx context.Context, req *types.DownloadRequest) error {
	if err := req.Validate(); err != nil {
		return NewError(KindValidation, err.Error())
	}

	download := &entity.Download{
		FileID:    req.ID,
		UserAgent: req.UserAgent,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.downloadRepo.CreateDownload(ctx, download); err != nil {
		return WrapError(KindStore, DefaultErrorMessage, err)
	}

	s.notifier.FileDownloaded(req.ID)

	return nil
}

func (s *StatisticsService) RecordPreviewDownload(ctx context.Context, userAgent string) error {
	download := &entity.PreviewDownload{
		UserAgent: userAgent,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.downloadRepo.CreatePreviewDownload(ctx, download); err != nil {
		return WrapError(KindStore, DefaultErrorMessage, err)
	}

	return nil
}

type DownloadTotals struct {
	Downloads        int64
	PreviewDownloads int64
}

func (s *StatisticsService) DownloadTotals(ctx context.Context) (*DownloadTotals, error) {
	downloads, err := s.downloadRepo.CountDownloads(ctx)
	if err != nil {
		return nil, WrapError(KindStore, DefaultErrorMessage, err)
	}
	previews, err := s.downloadRepo.CountPreviewDownloads(ctx)
	if err != nil {
		return nil, WrapError(KindStore, DefaultErrorMessage, err)
	}

	return &DownloadTotals{Downloads: downloads, PreviewDownloads: previews}, nil
}
