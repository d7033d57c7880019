package models

import (
	"time"

	"github.com/google/uuid"
)

// PipelineLead is a prospective client moving through the sales funnel.
// It stays a standalone funnel record: closing a lead does not create a
// Contact or Policy.
type PipelineLead struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	Name          string        `json:"name" db:"name"`
	Email         string        `json:"email" db:"email"`
	Phone         *string       `json:"phone,omitempty" db:"phone"`
	InsuranceType InsuranceType `json:"insuranceType" db:"insurance_type"`
	AnnualPremium *float64      `json:"annualPremium,omitempty" db:"annual_premium"`
	Status        LeadStage     `json:"status" db:"status"`
	Notes         *string       `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
}

type CreateLeadRequest struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         *string       `json:"phone"`
	InsuranceType InsuranceType `json:"insuranceType"`
	AnnualPremium *float64      `json:"annualPremium"`
	Status        LeadStage     `json:"status"`
	Notes         *string       `json:"notes"`
}

type UpdateLeadRequest struct {
	Name          *string        `json:"name"`
	Email         *string        `json:"email"`
	Phone         *string        `json:"phone"`
	InsuranceType *InsuranceType `json:"insuranceType"`
	AnnualPremium *float64       `json:"annualPremium"`
	Status        *LeadStage     `json:"status"`
	Notes         *string        `json:"notes"`
}

type ChangeStageRequest struct {
	Status LeadStage `json:"status"`
}

// LeadFilter narrows ListLeads results. Zero value returns everything.
type LeadFilter struct {
	Search        string
	InsuranceType InsuranceType
}

// PipelineMetrics is recomputed from the current lead list on every read.
type PipelineMetrics struct {
	TotalPipelineValue float64               `json:"totalPipelineValue"`
	AverageDealValue   float64               `json:"averageDealValue"`
	ConversionRate     float64               `json:"conversionRate"`
	StageValues        map[LeadStage]float64 `json:"stageValues"`
}
