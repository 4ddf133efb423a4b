package models

import "time"

// Attachment describes one uploaded file linked to a task or bug.
//
// Attachments live inside the owning entity's document; there is no
// dedicated attachment table. Every attachment carries its own stable
// identifier so removal is unambiguous even if the list was refetched
// or reordered since the caller last loaded it.
type Attachment struct {
	// AttachmentID is generated client-side when the upload succeeds.
	AttachmentID string `json:"attachment_id"`

	// Filename is the original name of the uploaded file.
	Filename string `json:"filename"`

	// URL is the location assigned by the file storage service.
	URL string `json:"url"`

	// UploadedBy is the ID of the user who uploaded the file.
	UploadedBy string `json:"uploaded_by"`

	// UploadedAt is the client-side upload completion time.
	UploadedAt time.Time `json:"uploaded_at"`
}

// FileUpload is one file handed to the file storage service.
type FileUpload struct {
	Name    string
	Content []byte
}

// UploadResult is the per-file outcome of a storage upload call.
// Partial failure is expected: some files in a batch may succeed while
// others carry a non-empty UploadError.
type UploadResult struct {
	FileName    string `json:"file_name"`
	FileURL     string `json:"file_url,omitempty"`
	UploadError string `json:"upload_error,omitempty"`
}

// Failed reports whether this file's upload was rejected.
func (r UploadResult) Failed() bool { return r.UploadError != "" }
