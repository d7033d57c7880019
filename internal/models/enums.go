package models

type LeadStage string

// Funnel order is presentational only; any stage may move to any other.
const (
	StageLeads     LeadStage = "leads"
	StageQualified LeadStage = "qualified"
	StageProposal  LeadStage = "proposal"
	StageClosed    LeadStage = "closed"
)

// LeadStages lists the funnel columns left to right.
var LeadStages = []LeadStage{StageLeads, StageQualified, StageProposal, StageClosed}

func (s LeadStage) Valid() bool {
	switch s {
	case StageLeads, StageQualified, StageProposal, StageClosed:
		return true
	}
	return false
}

type InsuranceType string

const (
	InsuranceAuto     InsuranceType = "auto"
	InsuranceHome     InsuranceType = "home"
	InsuranceLife     InsuranceType = "life"
	InsuranceBusiness InsuranceType = "business"
)

func (t InsuranceType) Valid() bool {
	switch t {
	case InsuranceAuto, InsuranceHome, InsuranceLife, InsuranceBusiness:
		return true
	}
	return false
}

type ContactType string

const (
	ContactIndividual ContactType = "individual"
	ContactBusiness   ContactType = "business"
)

func (t ContactType) Valid() bool {
	return t == ContactIndividual || t == ContactBusiness
}

type PolicyStatus string

const (
	PolicyActive    PolicyStatus = "active"
	PolicyExpired   PolicyStatus = "expired"
	PolicyCancelled PolicyStatus = "cancelled"
)

func (s PolicyStatus) Valid() bool {
	switch s {
	case PolicyActive, PolicyExpired, PolicyCancelled:
		return true
	}
	return false
}

type ClaimStatus string

const (
	ClaimOpen     ClaimStatus = "open"
	ClaimInReview ClaimStatus = "in_review"
	ClaimApproved ClaimStatus = "approved"
	ClaimClosed   ClaimStatus = "closed"
	ClaimDenied   ClaimStatus = "denied"
)

func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimOpen, ClaimInReview, ClaimApproved, ClaimClosed, ClaimDenied:
		return true
	}
	return false
}

type DocumentCategory string

const (
	CategoryPolicies  DocumentCategory = "policies"
	CategoryClaims    DocumentCategory = "claims"
	CategoryContracts DocumentCategory = "contracts"
	CategoryForms     DocumentCategory = "forms"
)

func (c DocumentCategory) Valid() bool {
	switch c {
	case CategoryPolicies, CategoryClaims, CategoryContracts, CategoryForms:
		return true
	}
	return false
}
