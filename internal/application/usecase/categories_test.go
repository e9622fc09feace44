package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saukstas/internal/domain/dto"
	"saukstas/internal/domain/model"
)

func TestCategoryIndexRebuild(t *testing.T) {
	recipes := newFakeRecipes(
		model.Recipe{ID: "1", Status: model.StatusPublished, Categories: []string{"Žuvis ir jūros gėrybės", "Sriubos"}},
		model.Recipe{ID: "2", Status: model.StatusPublished, Categories: []string{"Sriubos", "Sriubos"}},
		model.Recipe{ID: "3", Status: model.StatusPublished, Categories: []string{"Užkandžiai"}},
		model.Recipe{ID: "4", Status: model.StatusPublished, Categories: []string{"Desertai"}},
		model.Recipe{ID: "5", Status: model.StatusDraft, Categories: []string{"Bulvės"}},
	)
	index := NewCategoryIndex(recipes)
	assert.Empty(t, index.Counts())

	counts, err := index.Rebuild(context.Background())
	require.NoError(t, err)

	// Lithuanian collation puts Ž after Z and U before Ž
	want := []dto.CategoryCount{
		{Name: "Desertai", Count: 1},
		{Name: "Sriubos", Count: 2},
		{Name: "Užkandžiai", Count: 1},
		{Name: "Žuvis ir jūros gėrybės", Count: 1},
	}
	assert.Equal(t, want, counts)
	assert.Equal(t, want, index.Counts())
}

func TestCategoryCountsAreCopies(t *testing.T) {
	index := NewCategoryIndex(newFakeRecipes(
		model.Recipe{ID: "1", Status: model.StatusPublished, Categories: []string{"Sriubos"}},
	))
	_, err := index.Rebuild(context.Background())
	require.NoError(t, err)

	counts := index.Counts()
	counts[0].Count = 99

	assert.Equal(t, 1, index.Counts()[0].Count)
}
