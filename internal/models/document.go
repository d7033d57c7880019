package models

import (
	"time"

	"github.com/google/uuid"
)

// Document holds uploaded file metadata. The object bytes live in MinIO
// under FileName; deleting a document removes both.
type Document struct {
	ID           uuid.UUID        `json:"id" db:"id"`
	FileName     string           `json:"fileName" db:"file_name"`
	OriginalName string           `json:"originalName" db:"original_name"`
	FileSize     int64            `json:"fileSize" db:"file_size"`
	MimeType     string           `json:"mimeType" db:"mime_type"`
	Category     DocumentCategory `json:"category" db:"category"`
	ContactID    *uuid.UUID       `json:"contactId,omitempty" db:"contact_id"`
	PolicyID     *uuid.UUID       `json:"policyId,omitempty" db:"policy_id"`
	ClaimID      *uuid.UUID       `json:"claimId,omitempty" db:"claim_id"`
	UploadedAt   time.Time        `json:"uploadedAt" db:"uploaded_at"`
}

type CreateDocumentRequest struct {
	FileName     string           `json:"fileName"`
	OriginalName string           `json:"originalName"`
	FileSize     int64            `json:"fileSize"`
	MimeType     string           `json:"mimeType"`
	Category     DocumentCategory `json:"category"`
	ContactID    *uuid.UUID       `json:"contactId"`
	PolicyID     *uuid.UUID       `json:"policyId"`
	ClaimID      *uuid.UUID       `json:"claimId"`
}
