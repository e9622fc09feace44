package usecase

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"saukstas/internal/domain/dto"
	"saukstas/internal/domain/repository/database"
	"saukstas/pkg/logger"
)

// CategoryIndex holds the category counts of published recipes. It is rebuilt
// by a full rescan, never updated incrementally.
type CategoryIndex struct {
	recipes database.RecipeRepository

	mu     sync.RWMutex
	counts []dto.CategoryCount
}

func NewCategoryIndex(recipes database.RecipeRepository) *CategoryIndex {
	return &CategoryIndex{
		recipes: recipes,
		counts:  []dto.CategoryCount{},
	}
}

// Rebuild rescans every published recipe and replaces the cached counts.
func (c *CategoryIndex) Rebuild(ctx context.Context) ([]dto.CategoryCount, error) {
	sets, err := c.recipes.PublishedCategories(ctx)
	if err != nil {
		return nil, upstream("failed to scan recipe categories", err)
	}

	tally := make(map[string]int)
	for _, set := range sets {
		seen := make(map[string]struct{}, len(set))
		for _, name := range set {
			if _, dup := seen[name]; dup || name == "" {
				continue
			}
			seen[name] = struct{}{}
			tally[name]++
		}
	}

	counts := make([]dto.CategoryCount, 0, len(tally))
	for name, n := range tally {
		counts = append(counts, dto.CategoryCount{Name: name, Count: n})
	}

	col := collate.New(language.Lithuanian)
	sort.Slice(counts, func(i, j int) bool {
		return col.CompareString(counts[i].Name, counts[j].Name) < 0
	})

	c.mu.Lock()
	c.counts = counts
	c.mu.Unlock()

	logger.Debug("category counts rebuilt", "categories", len(counts))

	return counts, nil
}

// refresh rebuilds after a recipe write. A failed rebuild keeps the old counts.
func (c *CategoryIndex) refresh(ctx context.Context) {
	if _, err := c.Rebuild(ctx); err != nil {
		logger.Warn("category counts are stale", "err", err)
	}
}

func (c *CategoryIndex) Counts() []dto.CategoryCount {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]dto.CategoryCount, len(c.counts))
	copy(out, c.counts)

	return out
}
