package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/repository"
)

// PipelineLeadService owns the lead lifecycle: CRUD, the kanban stage
// transition, and the derived pipeline metrics.
type PipelineLeadService struct {
	leadRepo repository.PipelineLeadRepository
}

func NewPipelineLeadService(leadRepo repository.PipelineLeadRepository) *PipelineLeadService {
	return &PipelineLeadService{leadRepo: leadRepo}
}

func (s *PipelineLeadService) CreateLead(ctx context.Context, req models.CreateLeadRequest) (*models.PipelineLead, error) {
	// The new-lead form may omit status; the funnel starts at the first column.
	if req.Status == "" {
		req.Status = models.StageLeads
	}

	verr := &ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		verr.add("name", "name is required")
	}
	// Email is checked for presence only, not format.
	if strings.TrimSpace(req.Email) == "" {
		verr.add("email", "email is required")
	}
	if !req.InsuranceType.Valid() {
		verr.add("insuranceType", fmt.Sprintf("invalid insurance type %q", req.InsuranceType))
	}
	if !req.Status.Valid() {
		verr.add("status", fmt.Sprintf("invalid stage %q", req.Status))
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	lead := &models.PipelineLead{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		InsuranceType: req.InsuranceType,
		AnnualPremium: req.AnnualPremium,
		Status:        req.Status,
		Notes:         req.Notes,
	}
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return lead, nil
}

func (s *PipelineLeadService) GetLead(ctx context.Context, id uuid.UUID) (*models.PipelineLead, error) {
	return s.leadRepo.GetByID(ctx, id)
}

func (s *PipelineLeadService) UpdateLead(ctx context.Context, id uuid.UUID, req models.UpdateLeadRequest) (*models.PipelineLead, error) {
	verr := &ValidationError{}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		verr.add("name", "name cannot be empty")
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) == "" {
		verr.add("email", "email cannot be empty")
	}
	if req.InsuranceType != nil && !req.InsuranceType.Valid() {
		verr.add("insuranceType", fmt.Sprintf("invalid insurance type %q", *req.InsuranceType))
	}
	if req.Status != nil && !req.Status.Valid() {
		verr.add("status", fmt.Sprintf("invalid stage %q", *req.Status))
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	return s.leadRepo.Update(ctx, id, req)
}

// ChangeStage moves a lead to any stage, including back to an earlier
// column or onto its current one. Repeating the same target stage is
// idempotent: only updatedAt advances.
func (s *PipelineLeadService) ChangeStage(ctx context.Context, id uuid.UUID, stage models.LeadStage) (*models.PipelineLead, error) {
	if !stage.Valid() {
		verr := &ValidationError{}
		verr.add("status", fmt.Sprintf("invalid stage %q", stage))
		return nil, verr
	}
	return s.leadRepo.Update(ctx, id, models.UpdateLeadRequest{Status: &stage})
}

func (s *PipelineLeadService) DeleteLead(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.leadRepo.Delete(ctx, id)
}

// ListLeads returns every lead, narrowed by the optional filter:
// free-text match against name/email/insuranceType and an exact
// insurance type match.
func (s *PipelineLeadService) ListLeads(ctx context.Context, filter models.LeadFilter) ([]models.PipelineLead, error) {
	leads, err := s.leadRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return FilterLeads(leads, filter), nil
}

// FilterLeads applies the list filter to an already-fetched lead slice.
func FilterLeads(leads []models.PipelineLead, filter models.LeadFilter) []models.PipelineLead {
	if filter.Search == "" && filter.InsuranceType == "" {
		return leads
	}

	query := strings.ToLower(filter.Search)
	filtered := make([]models.PipelineLead, 0, len(leads))
	for _, lead := range leads {
		if filter.InsuranceType != "" && lead.InsuranceType != filter.InsuranceType {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(lead.Name), query) &&
			!strings.Contains(strings.ToLower(lead.Email), query) &&
			!strings.Contains(strings.ToLower(string(lead.InsuranceType)), query) {
			continue
		}
		filtered = append(filtered, lead)
	}
	return filtered
}

func (s *PipelineLeadService) Metrics(ctx context.Context) (*models.PipelineMetrics, error) {
	leads, err := s.leadRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute pipeline metrics: %w", err)
	}
	metrics := ComputeMetrics(leads)
	return &metrics, nil
}

// ComputeMetrics derives the pipeline read model from the current lead
// list. Absent premiums count as zero; an empty pipeline yields zeros
// throughout rather than a division fault.
func ComputeMetrics(leads []models.PipelineLead) models.PipelineMetrics {
	metrics := models.PipelineMetrics{
		StageValues: make(map[models.LeadStage]float64, len(models.LeadStages)),
	}
	for _, stage := range models.LeadStages {
		metrics.StageValues[stage] = 0
	}

	closed := 0
	for _, lead := range leads {
		premium := 0.0
		if lead.AnnualPremium != nil {
			premium = *lead.AnnualPremium
		}
		metrics.TotalPipelineValue += premium
		metrics.StageValues[lead.Status] += premium
		if lead.Status == models.StageClosed {
			closed++
		}
	}

	if len(leads) > 0 {
		metrics.AverageDealValue = metrics.TotalPipelineValue / float64(len(leads))
		metrics.ConversionRate = float64(closed) / float64(len(leads)) * 100
	}
	return metrics
}
