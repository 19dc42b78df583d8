package weekly

import (
	"testing"

	"mojamalca-api/models"

	"github.com/stretchr/testify/assert"
)

func intp(i int) *int { return &i }

func TestSelectionValidate(t *testing.T) {
	assert.NoError(t, Selection{MenuID: 3, OptionIndex: intp(0)}.Validate())
	assert.NoError(t, Selection{NoMeal: true}.Validate())

	assert.ErrorIs(t, Selection{}.Validate(), ErrEmptySelection)
	assert.ErrorIs(t, Selection{MenuID: 3}.Validate(), ErrEmptySelection)
	assert.ErrorIs(t, Selection{OptionIndex: intp(1)}.Validate(), ErrEmptySelection)
	assert.ErrorIs(t, Selection{NoMeal: true, MenuID: 3, OptionIndex: intp(1)}.Validate(), ErrAmbiguousSelection)
	assert.ErrorIs(t, Selection{MenuID: 3, OptionIndex: intp(-1)}.Validate(), ErrBadOptionIndex)
}

func TestSelectionSetValidate(t *testing.T) {
	good := SelectionSet{
		"2026-08-31": {MenuID: 1, OptionIndex: intp(0)},
		"2026-09-01": {NoMeal: true},
	}
	assert.NoError(t, good.Validate())

	badDate := SelectionSet{"31.08.2026": {NoMeal: true}}
	assert.ErrorIs(t, badDate.Validate(), ErrBadSelectionDate)

	badSel := SelectionSet{"2026-08-31": {}}
	assert.ErrorIs(t, badSel.Validate(), ErrEmptySelection)
}

func TestSelectionSetComplete(t *testing.T) {
	days := []string{"2026-08-31", "2026-09-01", "2026-09-02"}
	set := SelectionSet{
		"2026-08-31": {NoMeal: true},
		"2026-09-02": {MenuID: 1, OptionIndex: intp(1)},
	}

	assert.False(t, set.Complete(days))
	assert.Equal(t, []string{"2026-09-01"}, set.Missing(days))

	set["2026-09-01"] = Selection{NoMeal: true}
	assert.True(t, set.Complete(days))
	assert.Nil(t, set.Missing(days))
}

func TestOrderLifecycle(t *testing.T) {
	assert.NoError(t, CanAmend(models.StatusSubmitted, "employee"))
	assert.NoError(t, CanAmend(models.StatusSubmitted, "admin"))

	// The single amendment budget: AMENDED is terminal
	assert.Error(t, CanAmend(models.StatusAmended, "employee"))
	assert.Error(t, CanAmend(models.StatusAmended, "admin"))

	// Unknown actors cannot transition at all
	assert.Error(t, CanTransition(models.StatusSubmitted, models.StatusAmended, "company"))
}
