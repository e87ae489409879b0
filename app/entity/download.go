package entity

import "time"

type Download struct {
	ID uint64

	FileID    string
	UserAgent string

	CreatedAt time.Time
}

type PreviewDownload struct {
	ID uint64

	UserAgent string

	CreatedAt time.Time
}
