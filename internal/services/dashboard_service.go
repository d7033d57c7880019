package services

import (
	"context"
	"fmt"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/repository"
)

// DashboardService derives the dashboard counters by scanning every
// collection. Nothing is cached; each call recomputes from the store.
type DashboardService struct {
	contactRepo repository.ContactRepository
	leadRepo    repository.PipelineLeadRepository
	policyRepo  repository.PolicyRepository
	claimRepo   repository.ClaimRepository
}

func NewDashboardService(
	contactRepo repository.ContactRepository,
	leadRepo repository.PipelineLeadRepository,
	policyRepo repository.PolicyRepository,
	claimRepo repository.ClaimRepository,
) *DashboardService {
	return &DashboardService{
		contactRepo: contactRepo,
		leadRepo:    leadRepo,
		policyRepo:  policyRepo,
		claimRepo:   claimRepo,
	}
}

func (s *DashboardService) ComputeStats(ctx context.Context) (*models.DashboardStats, error) {
	contacts, err := s.contactRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	policies, err := s.policyRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load policies: %w", err)
	}
	claims, err := s.claimRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load claims: %w", err)
	}
	leads, err := s.leadRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leads: %w", err)
	}

	stats := ComputeStats(contacts, policies, claims, leads)
	return &stats, nil
}

// ComputeStats is the pure counterpart of the dashboard read model.
func ComputeStats(
	contacts []models.Contact,
	policies []models.Policy,
	claims []models.Claim,
	leads []models.PipelineLead,
) models.DashboardStats {
	stats := models.DashboardStats{
		TotalClients: len(contacts),
	}

	for _, p := range policies {
		if p.Status == models.PolicyActive {
			stats.ActivePolicies++
			stats.MonthlyRevenue += p.Premium
		}
	}
	for _, c := range claims {
		if c.Status == models.ClaimOpen || c.Status == models.ClaimInReview {
			stats.OpenClaims++
		}
		if c.Status == models.ClaimInReview {
			stats.PendingClaims++
		}
	}
	for _, l := range leads {
		if l.Status == models.StageLeads {
			stats.NewLeads++
		}
	}
	return stats
}
