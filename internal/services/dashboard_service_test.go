package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/repository"
)

func TestComputeStats_EmptyCollections(t *testing.T) {
	stats := ComputeStats(nil, nil, nil, nil)

	assert.Zero(t, stats.ActivePolicies)
	assert.Zero(t, stats.OpenClaims)
	assert.Zero(t, stats.MonthlyRevenue)
	assert.Zero(t, stats.NewLeads)
	assert.Zero(t, stats.TotalClients)
	assert.Zero(t, stats.PendingClaims)
}

func TestComputeStats_Counts(t *testing.T) {
	contacts := []models.Contact{{FirstName: "A"}, {FirstName: "B"}}
	policies := []models.Policy{
		{Status: models.PolicyActive, Premium: 1500},
		{Status: models.PolicyActive, Premium: 800.50},
		{Status: models.PolicyExpired, Premium: 9999},
		{Status: models.PolicyCancelled, Premium: 100},
	}
	claims := []models.Claim{
		{Status: models.ClaimOpen},
		{Status: models.ClaimInReview},
		{Status: models.ClaimApproved},
		{Status: models.ClaimClosed},
		{Status: models.ClaimDenied},
	}
	leads := []models.PipelineLead{
		{Status: models.StageLeads},
		{Status: models.StageLeads},
		{Status: models.StageQualified},
		{Status: models.StageClosed},
	}

	stats := ComputeStats(contacts, policies, claims, leads)

	assert.Equal(t, 2, stats.ActivePolicies)
	assert.InDelta(t, 2300.50, stats.MonthlyRevenue, 0.001, "revenue sums active premiums only")
	assert.Equal(t, 2, stats.OpenClaims, "open plus in_review")
	assert.Equal(t, 1, stats.PendingClaims, "in_review only")
	assert.Equal(t, 2, stats.NewLeads, "leads column only")
	assert.Equal(t, 2, stats.TotalClients)
}

func TestComputeStats_PolicyPartition(t *testing.T) {
	policies := []models.Policy{
		{Status: models.PolicyActive, Premium: 1},
		{Status: models.PolicyExpired, Premium: 2},
		{Status: models.PolicyActive, Premium: 3},
		{Status: models.PolicyCancelled, Premium: 4},
		{Status: models.PolicyExpired, Premium: 5},
	}

	stats := ComputeStats(nil, policies, nil, nil)

	nonActive := 0
	for _, p := range policies {
		if p.Status != models.PolicyActive {
			nonActive++
		}
	}
	assert.Equal(t, len(policies), stats.ActivePolicies+nonActive)
	assert.InDelta(t, 4, stats.MonthlyRevenue, 0.001)
}

func TestDashboardService_ReadsCurrentState(t *testing.T) {
	store := repository.NewMemoryStore()
	s := NewDashboardService(store.Contacts, store.Leads, store.Policies, store.Claims)
	ctx := context.Background()

	require.NoError(t, store.Contacts.Create(ctx, &models.Contact{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"}))
	require.NoError(t, store.Policies.Create(ctx, &models.Policy{Type: models.InsuranceAuto, Premium: 1200, Status: models.PolicyActive}))
	require.NoError(t, store.Claims.Create(ctx, &models.Claim{ClaimID: "CLM-001", Type: models.InsuranceAuto, Status: models.ClaimOpen}))

	stats, err := s.ComputeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalClients)
	assert.Equal(t, 1, stats.ActivePolicies)
	assert.Equal(t, 1, stats.OpenClaims)
	assert.InDelta(t, 1200, stats.MonthlyRevenue, 0.001)

	// Stats are recomputed on every read, so a delete shows up immediately.
	deleted, err := store.Policies.Delete(ctx, mustFirstPolicyID(t, store))
	require.NoError(t, err)
	require.True(t, deleted)

	stats, err = s.ComputeStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.ActivePolicies)
	assert.Zero(t, stats.MonthlyRevenue)
}

func mustFirstPolicyID(t *testing.T, store *repository.Store) uuid.UUID {
	t.Helper()
	policies, err := store.Policies.GetAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, policies)
	return policies[0].ID
}
