package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/repository"
)

func TestCreateClaim(t *testing.T) {
	store := repository.NewMemoryStore()
	s := NewClaimService(store.Claims)

	claim, err := s.CreateClaim(context.Background(), models.CreateClaimRequest{
		ClaimID: "CLM-2024-001",
		Type:    models.InsuranceAuto,
		Amount:  floatPtr(4500),
		Status:  models.ClaimOpen,
	})

	require.NoError(t, err)
	assert.Equal(t, "CLM-2024-001", claim.ClaimID)
	assert.False(t, claim.DateFiled.IsZero(), "filing date is set at creation")
}

func TestCreateClaim_MissingFields(t *testing.T) {
	store := repository.NewMemoryStore()
	s := NewClaimService(store.Claims)

	_, err := s.CreateClaim(context.Background(), models.CreateClaimRequest{
		Status: "pending",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"claimId", "type", "amount", "status"}, fields)
}

func TestUpdateClaim_StatusBumpsUpdatedAt(t *testing.T) {
	store := repository.NewMemoryStore()
	s := NewClaimService(store.Claims)
	claim, err := s.CreateClaim(context.Background(), models.CreateClaimRequest{
		ClaimID: "CLM-1",
		Type:    models.InsuranceHome,
		Amount:  floatPtr(800),
		Status:  models.ClaimOpen,
	})
	require.NoError(t, err)

	approved := models.ClaimApproved
	updated, err := s.UpdateClaim(context.Background(), claim.ID, models.UpdateClaimRequest{
		Status: &approved,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ClaimApproved, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(claim.UpdatedAt))
	assert.Equal(t, claim.DateFiled, updated.DateFiled, "filing date never changes")
}
