package service

import (
	"context"
	"testing"
	"time"

	"backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type configFixture struct {
	service       DeclarationConfigService
	ruleRepo      *fakeDeclarationRuleRepo
	taxReturnRepo *fakeTaxReturnRepo
}

func newConfigFixture() *configFixture {
	f := &configFixture{
		ruleRepo:      newFakeDeclarationRuleRepo(),
		taxReturnRepo: newFakeTaxReturnRepo(),
	}
	f.service = NewDeclarationConfigService(f.ruleRepo, f.taxReturnRepo)
	return f
}

func TestCreateConfigDefaults(t *testing.T) {
	f := newConfigFixture()

	config, err := f.service.Create(context.Background(), CreateDeclarationConfigRequest{
		Type:      "KDV",
		Frequency: model.FrequencyMonthly,
		DueDay:    intPtr(26),
	})
	require.NoError(t, err)
	assert.True(t, config.Enabled)
	assert.Equal(t, model.TaxPeriodNormal, config.TaxPeriodType)
}

func TestCreateConfigRejectsInconsistentTiming(t *testing.T) {
	f := newConfigFixture()

	cases := []CreateDeclarationConfigRequest{
		{Type: "KDV", Frequency: model.FrequencyMonthly, DueDay: intPtr(32)},
		{Type: "KDV", Frequency: model.FrequencyMonthly, DueMonth: intPtr(3)},
		{Type: "KDV", Frequency: model.FrequencyMonthly, QuarterOffset: intPtr(1)},
		{Type: "Geçici Vergi", Frequency: model.FrequencyQuarterly, QuarterOffset: intPtr(4)},
		{Type: "Gelir Vergisi", Frequency: model.FrequencyYearly, SkipQuarter: true},
		{Type: "Gelir Vergisi", Frequency: model.FrequencyYearly, Quarters: "1,2"},
	}
	for _, req := range cases {
		_, err := f.service.Create(context.Background(), req)
		assert.ErrorIs(t, err, model.ErrInvalidRule, "request %+v", req)
	}
}

func TestCreateConfigDuplicateType(t *testing.T) {
	f := newConfigFixture()

	_, err := f.service.Create(context.Background(), CreateDeclarationConfigRequest{
		Type: "KDV", Frequency: model.FrequencyMonthly, DueDay: intPtr(26),
	})
	require.NoError(t, err)

	_, err = f.service.Create(context.Background(), CreateDeclarationConfigRequest{
		Type: "KDV", Frequency: model.FrequencyMonthly, DueDay: intPtr(28),
	})
	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestUpdateConfigRenameBlockedWhenReferenced(t *testing.T) {
	f := newConfigFixture()

	config, err := f.service.Create(context.Background(), CreateDeclarationConfigRequest{
		Type: "KDV", Frequency: model.FrequencyMonthly, DueDay: intPtr(26),
	})
	require.NoError(t, err)

	tr := model.TaxReturn{
		CustomerID: uuid.New(),
		Type:       "KDV",
		Period:     "2024-10",
		Year:       2024,
		DueDate:    time.Date(2024, time.November, 26, 0, 0, 0, 0, time.UTC),
	}
	_, err = f.taxReturnRepo.Upsert(context.Background(), &tr)
	require.NoError(t, err)

	_, err = f.service.Update(context.Background(), config.ID, UpdateDeclarationConfigRequest{
		Type: "KDV-2", Frequency: model.FrequencyMonthly, DueDay: intPtr(26),
	})
	assert.ErrorIs(t, err, model.ErrConflict)

	// Other fields remain editable.
	updated, err := f.service.Update(context.Background(), config.ID, UpdateDeclarationConfigRequest{
		Type: "KDV", Frequency: model.FrequencyMonthly, DueDay: intPtr(28),
	})
	require.NoError(t, err)
	assert.Equal(t, 28, *updated.DueDay)
}

func TestDeleteConfig(t *testing.T) {
	f := newConfigFixture()

	unreferenced, err := f.service.Create(context.Background(), CreateDeclarationConfigRequest{
		Type: "Damga Vergisi", Frequency: model.FrequencyMonthly, DueDay: intPtr(26),
	})
	require.NoError(t, err)

	referenced, err := f.service.Create(context.Background(), CreateDeclarationConfigRequest{
		Type: "KDV", Frequency: model.FrequencyMonthly, DueDay: intPtr(26),
	})
	require.NoError(t, err)

	tr := model.TaxReturn{
		CustomerID: uuid.New(),
		Type:       "KDV",
		Period:     "2024-10",
		Year:       2024,
		DueDate:    time.Date(2024, time.November, 26, 0, 0, 0, 0, time.UTC),
	}
	_, err = f.taxReturnRepo.Upsert(context.Background(), &tr)
	require.NoError(t, err)

	// An unreferenced rule is removed outright.
	require.NoError(t, f.service.Delete(context.Background(), unreferenced.ID))
	_, err = f.service.Get(context.Background(), unreferenced.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// A referenced rule is disabled so existing returns keep their catalog row.
	require.NoError(t, f.service.Delete(context.Background(), referenced.ID))
	kept, err := f.service.Get(context.Background(), referenced.ID)
	require.NoError(t, err)
	assert.False(t, kept.Enabled)
}

func TestDeleteConfigInvalidID(t *testing.T) {
	f := newConfigFixture()

	err := f.service.Delete(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	err = f.service.Delete(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, model.ErrNotFound)
}
