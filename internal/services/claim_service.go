package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/repository"
)

type ClaimService struct {
	claimRepo repository.ClaimRepository
}

func NewClaimService(claimRepo repository.ClaimRepository) *ClaimService {
	return &ClaimService{claimRepo: claimRepo}
}

func (s *ClaimService) CreateClaim(ctx context.Context, req models.CreateClaimRequest) (*models.Claim, error) {
	verr := &ValidationError{}
	if strings.TrimSpace(req.ClaimID) == "" {
		verr.add("claimId", "claim id is required")
	}
	if !req.Type.Valid() {
		verr.add("type", fmt.Sprintf("invalid insurance type %q", req.Type))
	}
	if req.Amount == nil {
		verr.add("amount", "amount is required")
	}
	if !req.Status.Valid() {
		verr.add("status", fmt.Sprintf("invalid claim status %q", req.Status))
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	claim := &models.Claim{
		ClaimID:     req.ClaimID,
		PolicyID:    req.PolicyID,
		ContactID:   req.ContactID,
		Type:        req.Type,
		Amount:      *req.Amount,
		Status:      req.Status,
		Description: req.Description,
	}
	if err := s.claimRepo.Create(ctx, claim); err != nil {
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}
	return claim, nil
}

func (s *ClaimService) GetClaim(ctx context.Context, id uuid.UUID) (*models.Claim, error) {
	return s.claimRepo.GetByID(ctx, id)
}

func (s *ClaimService) ListClaims(ctx context.Context) ([]models.Claim, error) {
	return s.claimRepo.GetAll(ctx)
}

func (s *ClaimService) UpdateClaim(ctx context.Context, id uuid.UUID, req models.UpdateClaimRequest) (*models.Claim, error) {
	verr := &ValidationError{}
	if req.ClaimID != nil && strings.TrimSpace(*req.ClaimID) == "" {
		verr.add("claimId", "claim id cannot be empty")
	}
	if req.Type != nil && !req.Type.Valid() {
		verr.add("type", fmt.Sprintf("invalid insurance type %q", *req.Type))
	}
	if req.Status != nil && !req.Status.Valid() {
		verr.add("status", fmt.Sprintf("invalid claim status %q", *req.Status))
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	return s.claimRepo.Update(ctx, id, req)
}

func (s *ClaimService) DeleteClaim(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.claimRepo.Delete(ctx, id)
}
