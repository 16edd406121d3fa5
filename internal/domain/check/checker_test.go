package check_test

import (
	"testing"

	"github.com/locqa/locqa/internal/domain"
	"github.com/locqa/locqa/internal/domain/check"
	"github.com/stretchr/testify/assert"
)

func categories(checkers []check.Checker) []domain.Category {
	out := make([]domain.Category, 0, len(checkers))
	for _, c := range checkers {
		out = append(out, c.Category())
	}
	return out
}

func TestDefaultCheckers_Order(t *testing.T) {
	assert.Equal(t, []domain.Category{
		domain.CategoryTerminology,
		domain.CategoryPlaceholder,
		domain.CategoryLength,
		domain.CategoryStyle,
	}, categories(check.DefaultCheckers()))
}

func TestWithout_RemovesCategoriesKeepsOrder(t *testing.T) {
	got := check.Without(check.DefaultCheckers(), domain.CategoryPlaceholder, domain.CategoryStyle)
	assert.Equal(t, []domain.Category{domain.CategoryTerminology, domain.CategoryLength}, categories(got))
}

func TestWithout_NoSkipReturnsAll(t *testing.T) {
	assert.Len(t, check.Without(check.DefaultCheckers()), 4)
}
