package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/repository"
)

type ContactService struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

func (s *ContactService) CreateContact(ctx context.Context, req models.CreateContactRequest) (*models.Contact, error) {
	verr := &ValidationError{}
	if strings.TrimSpace(req.FirstName) == "" {
		verr.add("firstName", "first name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		verr.add("lastName", "last name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		verr.add("email", "email is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		verr.add("phone", "phone is required")
	}
	if !req.Type.Valid() {
		verr.add("type", fmt.Sprintf("invalid contact type %q", req.Type))
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Type:        req.Type,
		Address:     req.Address,
		LastContact: req.LastContact,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

func (s *ContactService) GetContact(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	return s.contactRepo.GetByID(ctx, id)
}

func (s *ContactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return s.contactRepo.GetAll(ctx)
}

func (s *ContactService) UpdateContact(ctx context.Context, id uuid.UUID, req models.UpdateContactRequest) (*models.Contact, error) {
	verr := &ValidationError{}
	if req.FirstName != nil && strings.TrimSpace(*req.FirstName) == "" {
		verr.add("firstName", "first name cannot be empty")
	}
	if req.LastName != nil && strings.TrimSpace(*req.LastName) == "" {
		verr.add("lastName", "last name cannot be empty")
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) == "" {
		verr.add("email", "email cannot be empty")
	}
	if req.Phone != nil && strings.TrimSpace(*req.Phone) == "" {
		verr.add("phone", "phone cannot be empty")
	}
	if req.Type != nil && !req.Type.Valid() {
		verr.add("type", fmt.Sprintf("invalid contact type %q", *req.Type))
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	return s.contactRepo.Update(ctx, id, req)
}

func (s *ContactService) DeleteContact(ctx context.Context, id uuid.UUID) (bool, error) {
	// No cascade: policies, claims and documents referencing this
	// contact keep their dangling reference.
	return s.contactRepo.Delete(ctx, id)
}
