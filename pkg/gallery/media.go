package gallery

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

// MediaType discriminates between the two kinds of media the backend stores.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaFilter restricts a media listing. The empty filter returns everything.
type MediaFilter string

const (
	FilterAll   MediaFilter = "all"
	FilterImage MediaFilter = "image"
	FilterVideo MediaFilter = "video"
)

// MediaItem is a single uploaded photo or video. Items are immutable on the
// client side; only album membership changes, and that is a join owned by the
// backend, not a field here.
type MediaItem struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	S3Key       string      `json:"s3_key"`
	ViewURL     string      `json:"view_url"`
	Type        MediaType   `json:"type"`
	Filename    null.String `json:"filename"`
	SizeBytes   null.Int    `json:"size_bytes"`
	ContentType null.String `json:"content_type"`
	CreatedAt   time.Time   `json:"created_at"`
}

// PresignRequest asks the backend for a direct-to-storage upload destination.
type PresignRequest struct {
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Type        MediaType `json:"type"`
}

// PresignResponse carries the presigned destination. The raw bytes are PUT to
// UploadURL out-of-band, then the object is registered with RegisterMediaRequest.
type PresignResponse struct {
	UploadURL string `json:"upload_url"`
	S3Key     string `json:"s3_key"`
}

// RegisterMediaRequest records an already-uploaded object's metadata.
type RegisterMediaRequest struct {
	S3Key       string    `json:"s3_key"`
	Type        MediaType `json:"type"`
	Filename    string    `json:"filename"`
	SizeBytes   int64     `json:"size_bytes"`
	ContentType string    `json:"content_type"`
}
