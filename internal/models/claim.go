package models

import (
	"time"

	"github.com/google/uuid"
)

type Claim struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	ClaimID     string        `json:"claimId" db:"claim_id"`
	PolicyID    *uuid.UUID    `json:"policyId,omitempty" db:"policy_id"`
	ContactID   *uuid.UUID    `json:"contactId,omitempty" db:"contact_id"`
	Type        InsuranceType `json:"type" db:"type"`
	Amount      float64       `json:"amount" db:"amount"`
	Status      ClaimStatus   `json:"status" db:"status"`
	Description *string       `json:"description,omitempty" db:"description"`
	DateFiled   time.Time     `json:"dateFiled" db:"date_filed"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}

type CreateClaimRequest struct {
	ClaimID     string        `json:"claimId"`
	PolicyID    *uuid.UUID    `json:"policyId"`
	ContactID   *uuid.UUID    `json:"contactId"`
	Type        InsuranceType `json:"type"`
	Amount      *float64      `json:"amount"`
	Status      ClaimStatus   `json:"status"`
	Description *string       `json:"description"`
}

type UpdateClaimRequest struct {
	ClaimID     *string        `json:"claimId"`
	PolicyID    *uuid.UUID     `json:"policyId"`
	ContactID   *uuid.UUID     `json:"contactId"`
	Type        *InsuranceType `json:"type"`
	Amount      *float64       `json:"amount"`
	Status      *ClaimStatus   `json:"status"`
	Description *string        `json:"description"`
}
