// Package report computes derived summary views over a transaction
// snapshot. Every function is pure: it reads the snapshot it is given and
// returns fresh values, so callers can recompute after any store mutation.
package report

import (
	"sort"

	"github.com/Veraticus/pennywise/internal/model"
)

// Summary holds the headline totals for a snapshot.
type Summary struct {
	Income  float64
	Expense float64
	Balance float64
}

// Totals accumulates income and expense over the full snapshot.
// Balance is always income minus expense; an empty snapshot yields zeros.
func Totals(txns []model.Transaction) Summary {
	var s Summary
	for _, txn := range txns {
		if txn.Type == model.TypeIncome {
			s.Income += txn.Amount
		} else {
			s.Expense += txn.Amount
		}
	}
	s.Balance = s.Income - s.Expense
	return s
}

// MonthlySeries partitions the snapshot by calendar month and accumulates
// income and expense per partition. The result contains exactly one entry
// per distinct YYYY-MM prefix present in the input, ascending by month key;
// months with no transactions are omitted.
func MonthlySeries(txns []model.Transaction) []model.MonthlySummary {
	byMonth := make(map[string]*model.MonthlySummary)
	for _, txn := range txns {
		month := txn.Month()
		entry, ok := byMonth[month]
		if !ok {
			entry = &model.MonthlySummary{Month: month}
			byMonth[month] = entry
		}
		if txn.Type == model.TypeIncome {
			entry.Income += txn.Amount
		} else {
			entry.Expense += txn.Amount
		}
	}

	series := make([]model.MonthlySummary, 0, len(byMonth))
	for _, entry := range byMonth {
		series = append(series, *entry)
	}
	// Zero-padded ISO month keys sort chronologically as strings.
	sort.Slice(series, func(i, j int) bool {
		return series[i].Month < series[j].Month
	})
	return series
}

// CategoryBreakdown accumulates expense totals per category. Income
// transactions are excluded entirely. Ordered by descending total, then by
// category label for a stable display order.
func CategoryBreakdown(txns []model.Transaction) []model.CategoryTotal {
	byCategory := make(map[model.Category]float64)
	for _, txn := range txns {
		if txn.Type != model.TypeExpense {
			continue
		}
		byCategory[txn.Category] += txn.Amount
	}

	breakdown := make([]model.CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		breakdown = append(breakdown, model.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Total != breakdown[j].Total {
			return breakdown[i].Total > breakdown[j].Total
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}
