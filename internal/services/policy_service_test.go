package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/repository"
)

func timePtr(v time.Time) *time.Time { return &v }

func TestCreatePolicy(t *testing.T) {
	store := repository.NewMemoryStore()
	s := NewPolicyService(store.Policies)

	policy, err := s.CreatePolicy(context.Background(), models.CreatePolicyRequest{
		PolicyNumber: "POL-2024-001",
		Type:         models.InsuranceAuto,
		Premium:      floatPtr(1200),
		Status:       models.PolicyActive,
		RenewalDate:  timePtr(time.Now().AddDate(1, 0, 0)),
	})

	require.NoError(t, err)
	assert.Equal(t, "POL-2024-001", policy.PolicyNumber)
	assert.Equal(t, 1200.0, policy.Premium)
}

func TestCreatePolicy_MissingFields(t *testing.T) {
	store := repository.NewMemoryStore()
	s := NewPolicyService(store.Policies)

	_, err := s.CreatePolicy(context.Background(), models.CreatePolicyRequest{
		Type:   "boat",
		Status: "paused",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"policyNumber", "type", "premium", "status", "renewalDate"}, fields)
}

func TestUpdatePolicy_StatusFeedsTheDashboard(t *testing.T) {
	store := repository.NewMemoryStore()
	s := NewPolicyService(store.Policies)
	dash := NewDashboardService(store.Contacts, store.Leads, store.Policies, store.Claims)

	policy, err := s.CreatePolicy(context.Background(), models.CreatePolicyRequest{
		PolicyNumber: "POL-1",
		Type:         models.InsuranceHome,
		Premium:      floatPtr(500),
		Status:       models.PolicyActive,
		RenewalDate:  timePtr(time.Now()),
	})
	require.NoError(t, err)

	cancelled := models.PolicyCancelled
	_, err = s.UpdatePolicy(context.Background(), policy.ID, models.UpdatePolicyRequest{
		Status: &cancelled,
	})
	require.NoError(t, err)

	stats, err := dash.ComputeStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.ActivePolicies)
	assert.Zero(t, stats.MonthlyRevenue)
}
