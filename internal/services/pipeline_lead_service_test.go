package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/repository"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newLeadService() *PipelineLeadService {
	store := repository.NewMemoryStore()
	return NewPipelineLeadService(store.Leads)
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func createTestLead(t *testing.T, s *PipelineLeadService, name string, insType models.InsuranceType, premium *float64, stage models.LeadStage) *models.PipelineLead {
	t.Helper()
	lead, err := s.CreateLead(context.Background(), models.CreateLeadRequest{
		Name:          name,
		Email:         fmt.Sprintf("%s@example.com", name),
		InsuranceType: insType,
		AnnualPremium: premium,
		Status:        stage,
	})
	require.NoError(t, err)
	return lead
}

// ============================================================================
// TEST SUITE 1: LEAD LIFECYCLE
// ============================================================================

func TestCreateLead_DefaultsToFirstStage(t *testing.T) {
	s := newLeadService()

	lead, err := s.CreateLead(context.Background(), models.CreateLeadRequest{
		Name:          "Maria Santos",
		Email:         "maria@example.com",
		InsuranceType: models.InsuranceAuto,
	})

	require.NoError(t, err)
	assert.Equal(t, models.StageLeads, lead.Status, "omitted status should land in the first column")
	assert.NotEqual(t, uuid.Nil, lead.ID)
	assert.False(t, lead.CreatedAt.IsZero())
	assert.Equal(t, lead.CreatedAt, lead.UpdatedAt, "fresh leads carry matching timestamps")
}

func TestCreateLead_ValidationErrors(t *testing.T) {
	s := newLeadService()

	// Missing name, bad insurance type, unparseable email format. Only the
	// first two are rejected: email is presence-checked, not format-checked.
	_, err := s.CreateLead(context.Background(), models.CreateLeadRequest{
		Name:          "",
		Email:         "not-an-email",
		InsuranceType: "spaceship",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "insuranceType"}, fields)
}

func TestCreateLead_RejectsInvalidStage(t *testing.T) {
	s := newLeadService()

	_, err := s.CreateLead(context.Background(), models.CreateLeadRequest{
		Name:          "Joao Lima",
		Email:         "joao@example.com",
		InsuranceType: models.InsuranceHome,
		Status:        "archived",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestGetLead_NotFound(t *testing.T) {
	s := newLeadService()

	_, err := s.GetLead(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateLead_PartialLeavesOtherFieldsAlone(t *testing.T) {
	s := newLeadService()
	lead := createTestLead(t, s, "carla", models.InsuranceLife, floatPtr(1200), models.StageLeads)

	updated, err := s.UpdateLead(context.Background(), lead.ID, models.UpdateLeadRequest{
		Name: strPtr("Carla Mendes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Carla Mendes", updated.Name)
	assert.Equal(t, lead.Email, updated.Email, "untouched fields survive a partial update")
	assert.Equal(t, lead.InsuranceType, updated.InsuranceType)
	require.NotNil(t, updated.AnnualPremium)
	assert.Equal(t, 1200.0, *updated.AnnualPremium)
	assert.Equal(t, lead.ID, updated.ID, "identity is stable across updates")
	assert.Equal(t, lead.CreatedAt, updated.CreatedAt)
}

func TestUpdateLead_EmptyRequestIsANoOp(t *testing.T) {
	s := newLeadService()
	lead := createTestLead(t, s, "diego", models.InsuranceAuto, nil, models.StageQualified)

	updated, err := s.UpdateLead(context.Background(), lead.ID, models.UpdateLeadRequest{})

	require.NoError(t, err)
	assert.Equal(t, lead.Name, updated.Name)
	assert.Equal(t, lead.Status, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(lead.UpdatedAt))
}

func TestUpdateLead_RejectsEmptyName(t *testing.T) {
	s := newLeadService()
	lead := createTestLead(t, s, "ana", models.InsuranceHome, nil, models.StageLeads)

	_, err := s.UpdateLead(context.Background(), lead.ID, models.UpdateLeadRequest{
		Name: strPtr("   "),
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestDeleteLead(t *testing.T) {
	s := newLeadService()
	lead := createTestLead(t, s, "rui", models.InsuranceBusiness, nil, models.StageLeads)

	deleted, err := s.DeleteLead(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.GetLead(context.Background(), lead.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Second delete reports the miss without erroring.
	deleted, err = s.DeleteLead(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

// ============================================================================
// TEST SUITE 2: STAGE TRANSITIONS
// ============================================================================

func TestChangeStage_AnyPairIsLegal(t *testing.T) {
	s := newLeadService()

	for _, from := range models.LeadStages {
		for _, to := range models.LeadStages {
			lead := createTestLead(t, s, "hop", models.InsuranceAuto, nil, from)

			moved, err := s.ChangeStage(context.Background(), lead.ID, to)

			require.NoError(t, err, "move %s -> %s should be legal", from, to)
			assert.Equal(t, to, moved.Status)
			assert.True(t, moved.UpdatedAt.After(moved.CreatedAt), "stage moves bump updatedAt")
		}
	}
}

func TestChangeStage_IdempotentRepeat(t *testing.T) {
	s := newLeadService()
	lead := createTestLead(t, s, "still", models.InsuranceLife, nil, models.StageProposal)

	first, err := s.ChangeStage(context.Background(), lead.ID, models.StageProposal)
	require.NoError(t, err)
	second, err := s.ChangeStage(context.Background(), lead.ID, models.StageProposal)
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt), "updatedAt never moves backwards")
}

func TestChangeStage_InvalidTarget(t *testing.T) {
	s := newLeadService()
	lead := createTestLead(t, s, "bad", models.InsuranceAuto, nil, models.StageLeads)

	_, err := s.ChangeStage(context.Background(), lead.ID, "won")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// The lead keeps its prior stage.
	current, err := s.GetLead(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageLeads, current.Status)
}

func TestChangeStage_UnknownLead(t *testing.T) {
	s := newLeadService()

	_, err := s.ChangeStage(context.Background(), uuid.New(), models.StageClosed)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// ============================================================================
// TEST SUITE 3: LIST FILTERING
// ============================================================================

func TestFilterLeads(t *testing.T) {
	leads := []models.PipelineLead{
		{Name: "Alice Costa", Email: "alice@corp.com", InsuranceType: models.InsuranceAuto},
		{Name: "Bob Pereira", Email: "bob@home.net", InsuranceType: models.InsuranceHome},
		{Name: "Carol Auto Shop", Email: "carol@shop.com", InsuranceType: models.InsuranceBusiness},
	}

	t.Run("zero filter returns everything", func(t *testing.T) {
		assert.Len(t, FilterLeads(leads, models.LeadFilter{}), 3)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		got := FilterLeads(leads, models.LeadFilter{Search: "ALICE"})
		require.Len(t, got, 1)
		assert.Equal(t, "Alice Costa", got[0].Name)
	})

	t.Run("search matches email", func(t *testing.T) {
		got := FilterLeads(leads, models.LeadFilter{Search: "home.net"})
		require.Len(t, got, 1)
		assert.Equal(t, "Bob Pereira", got[0].Name)
	})

	t.Run("search matches insurance type text", func(t *testing.T) {
		// "auto" hits both the auto-type lead and the name "Carol Auto Shop".
		got := FilterLeads(leads, models.LeadFilter{Search: "auto"})
		assert.Len(t, got, 2)
	})

	t.Run("type filter is exact", func(t *testing.T) {
		got := FilterLeads(leads, models.LeadFilter{InsuranceType: models.InsuranceHome})
		require.Len(t, got, 1)
		assert.Equal(t, "Bob Pereira", got[0].Name)
	})

	t.Run("search and type combine", func(t *testing.T) {
		got := FilterLeads(leads, models.LeadFilter{Search: "auto", InsuranceType: models.InsuranceBusiness})
		require.Len(t, got, 1)
		assert.Equal(t, "Carol Auto Shop", got[0].Name)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		got := FilterLeads(leads, models.LeadFilter{Search: "zzz"})
		assert.Empty(t, got)
	})
}

// ============================================================================
// TEST SUITE 4: PIPELINE METRICS
// ============================================================================

func TestComputeMetrics_EmptyPipeline(t *testing.T) {
	metrics := ComputeMetrics(nil)

	assert.Zero(t, metrics.TotalPipelineValue)
	assert.Zero(t, metrics.AverageDealValue)
	assert.Zero(t, metrics.ConversionRate)
	for _, stage := range models.LeadStages {
		v, ok := metrics.StageValues[stage]
		assert.True(t, ok, "every stage key is present even with no leads")
		assert.Zero(t, v)
	}
}

func TestComputeMetrics_Totals(t *testing.T) {
	leads := []models.PipelineLead{
		{Status: models.StageClosed, AnnualPremium: floatPtr(1200)},
		{Status: models.StageClosed, AnnualPremium: floatPtr(2500)},
		{Status: models.StageLeads, AnnualPremium: nil}, // absent premium counts as zero
	}

	metrics := ComputeMetrics(leads)

	assert.InDelta(t, 3700.00, metrics.TotalPipelineValue, 0.001)
	assert.InDelta(t, 1233.33, metrics.AverageDealValue, 0.01, "3700/3")
	assert.InDelta(t, 66.7, metrics.ConversionRate, 0.05, "2 closed of 3")
	assert.InDelta(t, 3700, metrics.StageValues[models.StageClosed], 0.001)
	assert.Zero(t, metrics.StageValues[models.StageLeads])
	assert.Zero(t, metrics.StageValues[models.StageQualified])
	assert.Zero(t, metrics.StageValues[models.StageProposal])
}

func TestComputeMetrics_StageValuesSumToTotal(t *testing.T) {
	leads := []models.PipelineLead{
		{Status: models.StageLeads, AnnualPremium: floatPtr(100)},
		{Status: models.StageLeads, AnnualPremium: floatPtr(250.5)},
		{Status: models.StageProposal, AnnualPremium: floatPtr(999.99)},
		{Status: models.StageClosed, AnnualPremium: floatPtr(4000)},
		{Status: models.StageClosed},
	}

	metrics := ComputeMetrics(leads)

	sum := 0.0
	for _, v := range metrics.StageValues {
		sum += v
	}
	assert.InDelta(t, metrics.TotalPipelineValue, sum, 0.001, "stage subtotals partition the total")
	assert.InDelta(t, 40.0, metrics.ConversionRate, 0.001, "2 closed of 5")
}

func TestMetrics_ThroughService(t *testing.T) {
	s := newLeadService()
	createTestLead(t, s, "one", models.InsuranceAuto, floatPtr(1000), models.StageLeads)
	createTestLead(t, s, "two", models.InsuranceHome, floatPtr(2000), models.StageClosed)

	metrics, err := s.Metrics(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, 3000, metrics.TotalPipelineValue, 0.001)
	assert.InDelta(t, 1500, metrics.AverageDealValue, 0.001)
	assert.InDelta(t, 50, metrics.ConversionRate, 0.001)
}
