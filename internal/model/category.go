package model

// Category is one of the fixed set of transaction categories.
type Category string

const (
	// CategorySalary is regular employment income.
	CategorySalary Category = "Salary"
	// CategoryFreelance is contract or side-gig income.
	CategoryFreelance Category = "Freelance"
	// CategoryInvestment is dividends, interest, and capital gains.
	CategoryInvestment Category = "Investment"
	// CategoryFood covers restaurants and groceries.
	CategoryFood Category = "Food & Dining"
	// CategoryTransport covers transit, fuel, and ride shares.
	CategoryTransport Category = "Transportation"
	// CategoryHousing covers rent, mortgage, and utilities.
	CategoryHousing Category = "Housing & Utilities"
	// CategoryEntertainment covers leisure spending.
	CategoryEntertainment Category = "Entertainment"
	// CategoryShopping covers retail purchases.
	CategoryShopping Category = "Shopping"
	// CategoryHealth covers medical and fitness spending.
	CategoryHealth Category = "Health & Fitness"
	// CategoryEducation covers tuition, courses, and books.
	CategoryEducation Category = "Education"
	// CategoryOthers is the catch-all for anything else.
	CategoryOthers Category = "Others"
)

// Categories returns every known category in display order.
func Categories() []Category {
	return []Category{
		CategorySalary,
		CategoryFreelance,
		CategoryInvestment,
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryEntertainment,
		CategoryShopping,
		CategoryHealth,
		CategoryEducation,
		CategoryOthers,
	}
}

// IncomeCategories returns the categories conventionally offered for income
// transactions. This is a presentation convention, not a stored invariant:
// any category may coexist with any type once persisted.
func IncomeCategories() []Category {
	return []Category{CategorySalary, CategoryFreelance, CategoryInvestment, CategoryOthers}
}

// ExpenseCategories returns the categories conventionally offered for
// expense transactions.
func ExpenseCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryEntertainment,
		CategoryShopping,
		CategoryHealth,
		CategoryEducation,
		CategoryOthers,
	}
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ConventionalFor reports whether c is conventionally offered for
// transactions of type t. Unconventional pairings are allowed but worth
// warning about at entry time.
func (c Category) ConventionalFor(t TransactionType) bool {
	var set []Category
	if t == TypeIncome {
		set = IncomeCategories()
	} else {
		set = ExpenseCategories()
	}
	for _, known := range set {
		if c == known {
			return true
		}
	}
	return false
}
