package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/valvesss/weseg-replit/internal/models"
)

// MemoryStore keeps every collection in process memory behind a single
// RWMutex, so two simultaneous writes to the same record serialize
// instead of losing one. Suited for a single-instance deployment; data
// does not survive a restart.
type MemoryStore struct {
	mu        sync.RWMutex
	contacts  map[uuid.UUID]models.Contact
	leads     map[uuid.UUID]models.PipelineLead
	policies  map[uuid.UUID]models.Policy
	claims    map[uuid.UUID]models.Claim
	documents map[uuid.UUID]models.Document
	profile   *models.BrokerProfile
}

func NewMemoryStore() *Store {
	ms := &MemoryStore{
		contacts:  make(map[uuid.UUID]models.Contact),
		leads:     make(map[uuid.UUID]models.PipelineLead),
		policies:  make(map[uuid.UUID]models.Policy),
		claims:    make(map[uuid.UUID]models.Claim),
		documents: make(map[uuid.UUID]models.Document),
	}
	return &Store{
		Contacts:      &memoryContacts{ms},
		Leads:         &memoryLeads{ms},
		Policies:      &memoryPolicies{ms},
		Claims:        &memoryClaims{ms},
		Documents:     &memoryDocuments{ms},
		BrokerProfile: &memoryBrokerProfile{ms},
	}
}

// Contacts

type memoryContacts struct{ s *MemoryStore }

func (r *memoryContacts) Create(_ context.Context, contact *models.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	contact.ID = uuid.New()
	contact.CreatedAt = time.Now()
	r.s.contacts[contact.ID] = *contact
	return nil
}

func (r *memoryContacts) GetByID(_ context.Context, id uuid.UUID) (*models.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	contact, ok := r.s.contacts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &contact, nil
}

func (r *memoryContacts) GetAll(_ context.Context) ([]models.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	contacts := make([]models.Contact, 0, len(r.s.contacts))
	for _, c := range r.s.contacts {
		contacts = append(contacts, c)
	}
	return contacts, nil
}

func (r *memoryContacts) Update(_ context.Context, id uuid.UUID, upd models.UpdateContactRequest) (*models.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.contacts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.FirstName != nil {
		existing.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		existing.LastName = *upd.LastName
	}
	if upd.Email != nil {
		existing.Email = *upd.Email
	}
	if upd.Phone != nil {
		existing.Phone = *upd.Phone
	}
	if upd.Type != nil {
		existing.Type = *upd.Type
	}
	if upd.Address != nil {
		existing.Address = upd.Address
	}
	if upd.LastContact != nil {
		existing.LastContact = upd.LastContact
	}
	r.s.contacts[id] = existing
	return &existing, nil
}

func (r *memoryContacts) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.contacts[id]; !ok {
		return false, nil
	}
	delete(r.s.contacts, id)
	return true, nil
}

// Pipeline leads

type memoryLeads struct{ s *MemoryStore }

func (r *memoryLeads) Create(_ context.Context, lead *models.PipelineLead) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	lead.ID = uuid.New()
	lead.CreatedAt = now
	lead.UpdatedAt = now
	r.s.leads[lead.ID] = *lead
	return nil
}

func (r *memoryLeads) GetByID(_ context.Context, id uuid.UUID) (*models.PipelineLead, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	lead, ok := r.s.leads[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &lead, nil
}

func (r *memoryLeads) GetAll(_ context.Context) ([]models.PipelineLead, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	leads := make([]models.PipelineLead, 0, len(r.s.leads))
	for _, l := range r.s.leads {
		leads = append(leads, l)
	}
	return leads, nil
}

func (r *memoryLeads) Update(_ context.Context, id uuid.UUID, upd models.UpdateLeadRequest) (*models.PipelineLead, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.leads[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.Name != nil {
		existing.Name = *upd.Name
	}
	if upd.Email != nil {
		existing.Email = *upd.Email
	}
	if upd.Phone != nil {
		existing.Phone = upd.Phone
	}
	if upd.InsuranceType != nil {
		existing.InsuranceType = *upd.InsuranceType
	}
	if upd.AnnualPremium != nil {
		existing.AnnualPremium = upd.AnnualPremium
	}
	if upd.Status != nil {
		existing.Status = *upd.Status
	}
	if upd.Notes != nil {
		existing.Notes = upd.Notes
	}
	existing.UpdatedAt = time.Now()
	r.s.leads[id] = existing
	return &existing, nil
}

func (r *memoryLeads) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.leads[id]; !ok {
		return false, nil
	}
	delete(r.s.leads, id)
	return true, nil
}

// Policies

type memoryPolicies struct{ s *MemoryStore }

func (r *memoryPolicies) Create(_ context.Context, policy *models.Policy) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	policy.ID = uuid.New()
	policy.CreatedAt = time.Now()
	r.s.policies[policy.ID] = *policy
	return nil
}

func (r *memoryPolicies) GetByID(_ context.Context, id uuid.UUID) (*models.Policy, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	policy, ok := r.s.policies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &policy, nil
}

func (r *memoryPolicies) GetAll(_ context.Context) ([]models.Policy, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	policies := make([]models.Policy, 0, len(r.s.policies))
	for _, p := range r.s.policies {
		policies = append(policies, p)
	}
	return policies, nil
}

func (r *memoryPolicies) Update(_ context.Context, id uuid.UUID, upd models.UpdatePolicyRequest) (*models.Policy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.policies[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.PolicyNumber != nil {
		existing.PolicyNumber = *upd.PolicyNumber
	}
	if upd.ContactID != nil {
		existing.ContactID = upd.ContactID
	}
	if upd.Type != nil {
		existing.Type = *upd.Type
	}
	if upd.Premium != nil {
		existing.Premium = *upd.Premium
	}
	if upd.Status != nil {
		existing.Status = *upd.Status
	}
	if upd.RenewalDate != nil {
		existing.RenewalDate = *upd.RenewalDate
	}
	r.s.policies[id] = existing
	return &existing, nil
}

func (r *memoryPolicies) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.policies[id]; !ok {
		return false, nil
	}
	delete(r.s.policies, id)
	return true, nil
}

// Claims

type memoryClaims struct{ s *MemoryStore }

func (r *memoryClaims) Create(_ context.Context, claim *models.Claim) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	claim.ID = uuid.New()
	claim.DateFiled = now
	claim.UpdatedAt = now
	r.s.claims[claim.ID] = *claim
	return nil
}

func (r *memoryClaims) GetByID(_ context.Context, id uuid.UUID) (*models.Claim, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	claim, ok := r.s.claims[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &claim, nil
}

func (r *memoryClaims) GetAll(_ context.Context) ([]models.Claim, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	claims := make([]models.Claim, 0, len(r.s.claims))
	for _, c := range r.s.claims {
		claims = append(claims, c)
	}
	return claims, nil
}

func (r *memoryClaims) Update(_ context.Context, id uuid.UUID, upd models.UpdateClaimRequest) (*models.Claim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.claims[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.ClaimID != nil {
		existing.ClaimID = *upd.ClaimID
	}
	if upd.PolicyID != nil {
		existing.PolicyID = upd.PolicyID
	}
	if upd.ContactID != nil {
		existing.ContactID = upd.ContactID
	}
	if upd.Type != nil {
		existing.Type = *upd.Type
	}
	if upd.Amount != nil {
		existing.Amount = *upd.Amount
	}
	if upd.Status != nil {
		existing.Status = *upd.Status
	}
	if upd.Description != nil {
		existing.Description = upd.Description
	}
	existing.UpdatedAt = time.Now()
	r.s.claims[id] = existing
	return &existing, nil
}

func (r *memoryClaims) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.claims[id]; !ok {
		return false, nil
	}
	delete(r.s.claims, id)
	return true, nil
}

// Documents

type memoryDocuments struct{ s *MemoryStore }

func (r *memoryDocuments) Create(_ context.Context, doc *models.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	doc.ID = uuid.New()
	doc.UploadedAt = time.Now()
	r.s.documents[doc.ID] = *doc
	return nil
}

func (r *memoryDocuments) GetByID(_ context.Context, id uuid.UUID) (*models.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	doc, ok := r.s.documents[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &doc, nil
}

func (r *memoryDocuments) GetAll(_ context.Context) ([]models.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	docs := make([]models.Document, 0, len(r.s.documents))
	for _, d := range r.s.documents {
		docs = append(docs, d)
	}
	return docs, nil
}

func (r *memoryDocuments) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.documents[id]; !ok {
		return false, nil
	}
	delete(r.s.documents, id)
	return true, nil
}

// Broker profile singleton

type memoryBrokerProfile struct{ s *MemoryStore }

func (r *memoryBrokerProfile) Get(_ context.Context) (*models.BrokerProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.profile == nil {
		return nil, ErrNotFound
	}
	profile := *r.s.profile
	return &profile, nil
}

func (r *memoryBrokerProfile) Upsert(_ context.Context, req models.UpsertBrokerProfileRequest) (*models.BrokerProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	createdAt := now
	if r.s.profile != nil {
		createdAt = r.s.profile.CreatedAt
	}
	profile := models.BrokerProfile{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		LicenseNumber:   req.LicenseNumber,
		Specializations: req.Specializations,
		Experience:      req.Experience,
		ProfilePicture:  req.ProfilePicture,
		CreatedAt:       createdAt,
		UpdatedAt:       now,
	}
	if req.LicenseExpiry != nil {
		profile.LicenseExpiry = *req.LicenseExpiry
	}
	r.s.profile = &profile
	result := profile
	return &result, nil
}
