package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/valvesss/weseg-replit/internal/models"
)

// ErrNotFound signals that an id is absent from the store. Callers must
// treat it as a normal outcome, never as a fault.
var ErrNotFound = errors.New("record not found")

// ContactRepository is keyed storage for contacts. Create assigns the id
// and createdAt on the passed record. Update merges only non-nil fields.
// Delete reports whether a record existed to remove. Deleting a contact
// does not cascade to its policies, claims or documents.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	GetAll(ctx context.Context) ([]models.Contact, error)
	Update(ctx context.Context, id uuid.UUID, upd models.UpdateContactRequest) (*models.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// PipelineLeadRepository stores funnel leads. Update refreshes updatedAt
// whenever it succeeds, even for an empty partial.
type PipelineLeadRepository interface {
	Create(ctx context.Context, lead *models.PipelineLead) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PipelineLead, error)
	GetAll(ctx context.Context) ([]models.PipelineLead, error)
	Update(ctx context.Context, id uuid.UUID, upd models.UpdateLeadRequest) (*models.PipelineLead, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type PolicyRepository interface {
	Create(ctx context.Context, policy *models.Policy) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Policy, error)
	GetAll(ctx context.Context) ([]models.Policy, error)
	Update(ctx context.Context, id uuid.UUID, upd models.UpdatePolicyRequest) (*models.Policy, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ClaimRepository interface {
	Create(ctx context.Context, claim *models.Claim) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Claim, error)
	GetAll(ctx context.Context) ([]models.Claim, error)
	Update(ctx context.Context, id uuid.UUID, upd models.UpdateClaimRequest) (*models.Claim, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// DocumentRepository stores upload metadata only; the bytes live in the
// object store.
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	GetAll(ctx context.Context) ([]models.Document, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// BrokerProfileRepository manages the singleton profile record.
type BrokerProfileRepository interface {
	Get(ctx context.Context) (*models.BrokerProfile, error)
	Upsert(ctx context.Context, req models.UpsertBrokerProfileRequest) (*models.BrokerProfile, error)
}

// Store bundles every repository behind one value so wiring stays flat.
type Store struct {
	Contacts      ContactRepository
	Leads         PipelineLeadRepository
	Policies      PolicyRepository
	Claims        ClaimRepository
	Documents     DocumentRepository
	BrokerProfile BrokerProfileRepository
}
