package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/repository"
)

// fakeObjectStorage records uploads in a map so tests can observe the
// object store without a running minio.
type fakeObjectStorage struct {
	objects   map[string][]byte
	uploadErr error
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{objects: make(map[string][]byte)}
}

func (f *fakeObjectStorage) UploadBytes(_ context.Context, objectName string, data []byte, _ string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.objects[objectName] = data
	return nil
}

func (f *fakeObjectStorage) DeleteFile(_ context.Context, objectName string) error {
	delete(f.objects, objectName)
	return nil
}

func (f *fakeObjectStorage) GetPresignedURL(_ context.Context, objectName string, _ time.Duration) (string, error) {
	return "https://storage.local/" + objectName, nil
}

func newDocumentService(objects ObjectStorage) *DocumentService {
	store := repository.NewMemoryStore()
	return NewDocumentService(store.Documents, objects)
}

func TestUpload_StoresObjectAndMetadata(t *testing.T) {
	objects := newFakeObjectStorage()
	s := newDocumentService(objects)

	doc, err := s.Upload(context.Background(), UploadInput{
		OriginalName: "policy-renewal.pdf",
		MimeType:     "application/pdf",
		Data:         []byte("%PDF-1.7 fake"),
		Category:     models.CategoryPolicies,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, doc.ID)
	assert.Equal(t, "policy-renewal.pdf", doc.OriginalName)
	assert.True(t, strings.HasSuffix(doc.FileName, "-policy-renewal.pdf"), "stored name is timestamp-prefixed")
	assert.Equal(t, int64(13), doc.FileSize)
	assert.Contains(t, objects.objects, doc.FileName)
}

func TestUpload_DefaultsCategoryToForms(t *testing.T) {
	s := newDocumentService(newFakeObjectStorage())

	doc, err := s.Upload(context.Background(), UploadInput{
		OriginalName: "intake.docx",
		MimeType:     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Data:         []byte("x"),
	})

	require.NoError(t, err)
	assert.Equal(t, models.CategoryForms, doc.Category)
}

func TestUpload_RejectsDisallowedMimeType(t *testing.T) {
	s := newDocumentService(newFakeObjectStorage())

	_, err := s.Upload(context.Background(), UploadInput{
		OriginalName: "malware.exe",
		MimeType:     "application/octet-stream",
		Data:         []byte("MZ"),
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestUpload_RejectsOversizedFile(t *testing.T) {
	s := newDocumentService(newFakeObjectStorage())

	_, err := s.Upload(context.Background(), UploadInput{
		OriginalName: "huge.pdf",
		MimeType:     "application/pdf",
		Data:         make([]byte, MaxUploadSize+1),
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestUpload_RejectsMissingFile(t *testing.T) {
	s := newDocumentService(newFakeObjectStorage())

	_, err := s.Upload(context.Background(), UploadInput{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestUpload_ObjectStoreFailureSurfacesError(t *testing.T) {
	objects := newFakeObjectStorage()
	objects.uploadErr = errors.New("bucket unavailable")
	s := newDocumentService(objects)

	_, err := s.Upload(context.Background(), UploadInput{
		OriginalName: "doc.pdf",
		MimeType:     "application/pdf",
		Data:         []byte("x"),
	})

	require.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr), "storage faults are not validation errors")
}

func TestDownloadURL(t *testing.T) {
	objects := newFakeObjectStorage()
	s := newDocumentService(objects)
	doc, err := s.Upload(context.Background(), UploadInput{
		OriginalName: "claims.xlsx",
		MimeType:     "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:         []byte("x"),
		Category:     models.CategoryClaims,
	})
	require.NoError(t, err)

	url, err := s.DownloadURL(context.Background(), doc.ID)

	require.NoError(t, err)
	assert.Equal(t, "https://storage.local/"+doc.FileName, url)
}

func TestDownloadURL_UnknownDocument(t *testing.T) {
	s := newDocumentService(newFakeObjectStorage())

	_, err := s.DownloadURL(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteDocument_RemovesMetadataAndObject(t *testing.T) {
	objects := newFakeObjectStorage()
	s := newDocumentService(objects)
	doc, err := s.Upload(context.Background(), UploadInput{
		OriginalName: "old.pdf",
		MimeType:     "application/pdf",
		Data:         []byte("x"),
	})
	require.NoError(t, err)

	deleted, err := s.DeleteDocument(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NotContains(t, objects.objects, doc.FileName)

	deleted, err = s.DeleteDocument(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete reports the miss")
}
