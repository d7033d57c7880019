package services

import (
	"context"
	"strings"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/repository"
)

// BrokerProfileService manages the singleton broker profile: created on
// the first PUT, replaced in place afterwards.
type BrokerProfileService struct {
	profileRepo repository.BrokerProfileRepository
}

func NewBrokerProfileService(profileRepo repository.BrokerProfileRepository) *BrokerProfileService {
	return &BrokerProfileService{profileRepo: profileRepo}
}

func (s *BrokerProfileService) GetProfile(ctx context.Context) (*models.BrokerProfile, error) {
	return s.profileRepo.Get(ctx)
}

func (s *BrokerProfileService) UpsertProfile(ctx context.Context, req models.UpsertBrokerProfileRequest) (*models.BrokerProfile, error) {
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
	if strings.TrimSpace(req.LicenseNumber) == "" {
		verr.add("licenseNumber", "license number is required")
	}
	if req.LicenseExpiry == nil {
		verr.add("licenseExpiry", "license expiry is required")
	}
	if strings.TrimSpace(req.Experience) == "" {
		verr.add("experience", "experience is required")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	return s.profileRepo.Upsert(ctx, req)
}
