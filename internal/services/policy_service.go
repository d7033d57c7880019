package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/repository"
)

type PolicyService struct {
	policyRepo repository.PolicyRepository
}

func NewPolicyService(policyRepo repository.PolicyRepository) *PolicyService {
	return &PolicyService{policyRepo: policyRepo}
}

func (s *PolicyService) CreatePolicy(ctx context.Context, req models.CreatePolicyRequest) (*models.Policy, error) {
	verr := &ValidationError{}
	if strings.TrimSpace(req.PolicyNumber) == "" {
		verr.add("policyNumber", "policy number is required")
	}
	if !req.Type.Valid() {
		verr.add("type", fmt.Sprintf("invalid insurance type %q", req.Type))
	}
	if req.Premium == nil {
		verr.add("premium", "premium is required")
	}
	if !req.Status.Valid() {
		verr.add("status", fmt.Sprintf("invalid policy status %q", req.Status))
	}
	if req.RenewalDate == nil {
		verr.add("renewalDate", "renewal date is required")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	policy := &models.Policy{
		PolicyNumber: req.PolicyNumber,
		ContactID:    req.ContactID,
		Type:         req.Type,
		Premium:      *req.Premium,
		Status:       req.Status,
		RenewalDate:  *req.RenewalDate,
	}
	if err := s.policyRepo.Create(ctx, policy); err != nil {
		return nil, fmt.Errorf("failed to create policy: %w", err)
	}
	return policy, nil
}

func (s *PolicyService) GetPolicy(ctx context.Context, id uuid.UUID) (*models.Policy, error) {
	return s.policyRepo.GetByID(ctx, id)
}

func (s *PolicyService) ListPolicies(ctx context.Context) ([]models.Policy, error) {
	return s.policyRepo.GetAll(ctx)
}

func (s *PolicyService) UpdatePolicy(ctx context.Context, id uuid.UUID, req models.UpdatePolicyRequest) (*models.Policy, error) {
	verr := &ValidationError{}
	if req.PolicyNumber != nil && strings.TrimSpace(*req.PolicyNumber) == "" {
		verr.add("policyNumber", "policy number cannot be empty")
	}
	if req.Type != nil && !req.Type.Valid() {
		verr.add("type", fmt.Sprintf("invalid insurance type %q", *req.Type))
	}
	if req.Status != nil && !req.Status.Valid() {
		verr.add("status", fmt.Sprintf("invalid policy status %q", *req.Status))
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	return s.policyRepo.Update(ctx, id, req)
}

func (s *PolicyService) DeletePolicy(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.policyRepo.Delete(ctx, id)
}
