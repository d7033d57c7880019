package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valvesss/weseg-replit/internal/models"
)

func TestMemoryStore_ContactCRUD(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	contact := &models.Contact{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Phone:     "555-0101",
		Type:      models.ContactIndividual,
	}
	require.NoError(t, store.Contacts.Create(ctx, contact))
	assert.NotEqual(t, uuid.Nil, contact.ID)
	assert.False(t, contact.CreatedAt.IsZero())

	got, err := store.Contacts.GetByID(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, contact.Email, got.Email)

	newPhone := "555-0202"
	updated, err := store.Contacts.Update(ctx, contact.ID, models.UpdateContactRequest{Phone: &newPhone})
	require.NoError(t, err)
	assert.Equal(t, "555-0202", updated.Phone)
	assert.Equal(t, "Jane", updated.FirstName, "partial update keeps other fields")

	all, err := store.Contacts.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	deleted, err := store.Contacts.Delete(ctx, contact.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = store.Contacts.GetByID(ctx, contact.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_GetByIDReturnsACopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	lead := &models.PipelineLead{
		Name:          "Original",
		Email:         "orig@x.com",
		InsuranceType: models.InsuranceAuto,
		Status:        models.StageLeads,
	}
	require.NoError(t, store.Leads.Create(ctx, lead))

	first, err := store.Leads.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	first.Name = "Mutated"

	second, err := store.Leads.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", second.Name, "callers cannot reach the stored record")
}

func TestMemoryStore_UpdateUnknownID(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Policies.Update(context.Background(), uuid.New(), models.UpdatePolicyRequest{})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_DeleteUnknownID(t *testing.T) {
	store := NewMemoryStore()

	deleted, err := store.Claims.Delete(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryStore_BrokerProfileSingleton(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.BrokerProfile.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound, "no profile exists before the first write")

	first, err := store.BrokerProfile.Upsert(ctx, models.UpsertBrokerProfileRequest{
		FirstName:       "John",
		LastName:        "Smith",
		Email:           "john@broker.com",
		Phone:           "555-0100",
		LicenseNumber:   "LIC-123",
		Specializations: []string{"auto", "home"},
		Experience:      "10 years",
	})
	require.NoError(t, err)

	second, err := store.BrokerProfile.Upsert(ctx, models.UpsertBrokerProfileRequest{
		FirstName:     "John",
		LastName:      "Smith",
		Email:         "john@broker.com",
		Phone:         "555-0999",
		LicenseNumber: "LIC-456",
		Experience:    "11 years",
	})
	require.NoError(t, err)
	assert.Equal(t, first.CreatedAt, second.CreatedAt, "upsert keeps the original creation time")
	assert.Equal(t, "LIC-456", second.LicenseNumber)
	assert.Empty(t, second.Specializations, "the PUT replaces every field, it does not merge")

	got, err := store.BrokerProfile.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "555-0999", got.Phone)
}

func TestMemoryStore_ConcurrentWrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			lead := &models.PipelineLead{
				Name:          fmt.Sprintf("lead-%d", n),
				Email:         fmt.Sprintf("lead-%d@x.com", n),
				InsuranceType: models.InsuranceAuto,
				Status:        models.StageLeads,
			}
			if err := store.Leads.Create(ctx, lead); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	leads, err := store.Leads.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, leads, 50)

	seen := make(map[uuid.UUID]bool, len(leads))
	for _, l := range leads {
		assert.False(t, seen[l.ID], "ids are unique")
		seen[l.ID] = true
	}
}
