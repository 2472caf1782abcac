package dto

import "mime/multipart"

// UploadFilePayload wraps the multipart header so the custom file
// validators can run against it.
type UploadFilePayload struct {
	File multipart.FileHeader `validate:"mimetypes=image/jpeg image/png image/gif image/webp application/pdf,maxfilesize=5"`
}

type UploadResponse struct {
	Key      string `json:"key"`
	Bucket   string `json:"bucket"`
	Location string `json:"location"`
}

type SignedURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}

type DeleteUploadRequest struct {
	Key string `json:"key" validate:"required,max=1024"`
}
