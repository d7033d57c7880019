package models

import (
	"time"

	"github.com/google/uuid"
)

type Policy struct {
	ID           uuid.UUID     `json:"id" db:"id"`
	PolicyNumber string        `json:"policyNumber" db:"policy_number"`
	ContactID    *uuid.UUID    `json:"contactId,omitempty" db:"contact_id"`
	Type         InsuranceType `json:"type" db:"type"`
	Premium      float64       `json:"premium" db:"premium"`
	Status       PolicyStatus  `json:"status" db:"status"`
	RenewalDate  time.Time     `json:"renewalDate" db:"renewal_date"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
}

type CreatePolicyRequest struct {
	PolicyNumber string        `json:"policyNumber"`
	ContactID    *uuid.UUID    `json:"contactId"`
	Type         InsuranceType `json:"type"`
	Premium      *float64      `json:"premium"`
	Status       PolicyStatus  `json:"status"`
	RenewalDate  *time.Time    `json:"renewalDate"`
}

type UpdatePolicyRequest struct {
	PolicyNumber *string        `json:"policyNumber"`
	ContactID    *uuid.UUID     `json:"contactId"`
	Type         *InsuranceType `json:"type"`
	Premium      *float64       `json:"premium"`
	Status       *PolicyStatus  `json:"status"`
	RenewalDate  *time.Time     `json:"renewalDate"`
}
