package repository

import (
	"context"

	"github.com/realguide/backend/app/entity"
)

type DownloadRepository struct {
	db DBTX
}

func NewDownloadRepository(db DBTX) *DownloadRepository {
	return &DownloadRepository{db: db}
}

func (r *DownloadRepository) CreateDownload(ctx context.Context, download *entity.Download) error {
	query := `
		INSERT INTO downloads (file_id, user_agent, created_at)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		download.FileID,
		download.UserAgent,
		download.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	download.ID = uint64(id)
	return nil
}

func (r *DownloadRepository) CreatePreviewDownload(ctx context.Context, download *entity.PreviewDownload) error {
	query := `
		INSERT INTO preview_downloads (user_agent, created_at)
		VALUES (?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		download.UserAgent,
		download.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	download.ID = uint64(id)
	return nil
}

func (r *DownloadRepository) CountDownloads(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM downloads`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DownloadRepository) CountPreviewDownloads(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM preview_downloads`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
