package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/repository"
)

// MaxUploadSize caps document uploads at 10MB.
const MaxUploadSize = 10 * 1024 * 1024

// Only office-style documents are accepted.
var allowedMimeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

// ObjectStorage is the slice of the object store the document service
// needs; satisfied by database/minio.MinioClient.
type ObjectStorage interface {
	UploadBytes(ctx context.Context, objectName string, data []byte, contentType string) error
	DeleteFile(ctx context.Context, objectName string) error
	GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

type DocumentService struct {
	documentRepo repository.DocumentRepository
	objects      ObjectStorage
}

func NewDocumentService(documentRepo repository.DocumentRepository, objects ObjectStorage) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		objects:      objects,
	}
}

// UploadInput carries one multipart upload plus its optional links.
type UploadInput struct {
	OriginalName string
	MimeType     string
	Data         []byte
	Category     models.DocumentCategory
	ContactID    *uuid.UUID
	PolicyID     *uuid.UUID
	ClaimID      *uuid.UUID
}

// Upload stores the file bytes in the object store and its metadata in
// the document collection.
func (s *DocumentService) Upload(ctx context.Context, input UploadInput) (*models.Document, error) {
	if input.Category == "" {
		input.Category = models.CategoryForms
	}

	verr := &ValidationError{}
	if input.OriginalName == "" {
		verr.add("file", "no file uploaded")
	}
	if len(input.Data) > MaxUploadSize {
		verr.add("file", fmt.Sprintf("file exceeds the %d byte limit", MaxUploadSize))
	}
	if !allowedMimeTypes[input.MimeType] {
		verr.add("file", "invalid file type, only PDF, DOC, DOCX, XLS, XLSX files are allowed")
	}
	if !input.Category.Valid() {
		verr.add("category", fmt.Sprintf("invalid document category %q", input.Category))
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), input.OriginalName)
	if err := s.objects.UploadBytes(ctx, fileName, input.Data, input.MimeType); err != nil {
		return nil, fmt.Errorf("failed to store document file: %w", err)
	}

	doc := &models.Document{
		FileName:     fileName,
		OriginalName: input.OriginalName,
		FileSize:     int64(len(input.Data)),
		MimeType:     input.MimeType,
		Category:     input.Category,
		ContactID:    input.ContactID,
		PolicyID:     input.PolicyID,
		ClaimID:      input.ClaimID,
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		// Keep the object store consistent with the metadata store.
		if cleanupErr := s.objects.DeleteFile(ctx, fileName); cleanupErr != nil {
			slog.Error("failed to clean up orphaned object", "file_name", fileName, "error", cleanupErr)
		}
		return nil, fmt.Errorf("failed to store document metadata: %w", err)
	}
	return doc, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	return s.documentRepo.GetByID(ctx, id)
}

func (s *DocumentService) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return s.documentRepo.GetAll(ctx)
}

// DownloadURL returns a short-lived link to the stored file.
func (s *DocumentService) DownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.objects.GetPresignedURL(ctx, doc.FileName, 15*time.Minute)
}

// DeleteDocument removes the metadata record and its stored object.
func (s *DocumentService) DeleteDocument(ctx context.Context, id uuid.UUID) (bool, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return false, nil
		}
		return false, err
	}

	deleted, err := s.documentRepo.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}

	if err := s.objects.DeleteFile(ctx, doc.FileName); err != nil {
		// Metadata is already gone; the orphaned object is logged, not fatal.
		slog.Error("failed to delete stored object", "file_name", doc.FileName, "error", err)
	}
	return true, nil
}
