package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), "category %q should be valid", c)
	}
	assert.False(t, Category("Groceries").Valid())
	assert.False(t, Category("").Valid())
}

func TestCategory_ConventionalFor(t *testing.T) {
	assert.True(t, CategorySalary.ConventionalFor(TypeIncome))
	assert.False(t, CategorySalary.ConventionalFor(TypeExpense))
	assert.True(t, CategoryFood.ConventionalFor(TypeExpense))
	assert.False(t, CategoryFood.ConventionalFor(TypeIncome))

	// Others is conventional for both directions.
	assert.True(t, CategoryOthers.ConventionalFor(TypeIncome))
	assert.True(t, CategoryOthers.ConventionalFor(TypeExpense))
}

func TestCategorySets_CoverAllCategories(t *testing.T) {
	seen := make(map[Category]bool)
	for _, c := range IncomeCategories() {
		seen[c] = true
	}
	for _, c := range ExpenseCategories() {
		seen[c] = true
	}
	for _, c := range Categories() {
		assert.True(t, seen[c], "category %q is offered for neither type", c)
	}
}
