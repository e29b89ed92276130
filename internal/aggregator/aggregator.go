// Package aggregator derives summary statistics from a RecordSet and
// renders the textual digest embedded in the commentary prompt.
package aggregator

import (
	"sort"
	"strings"

	"fjacquet/slipscan/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one row of the per-category aggregation.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// Summary holds the derived aggregates of one batch. The category rows are
// a partition of the RecordSet: their totals always sum to TotalAmount.
type Summary struct {
	Records        []models.Record
	TotalAmount    decimal.Decimal
	CategoryTotals []CategoryTotal

	// TopCategory is the category with the largest summed amount.
	TopCategory      string
	TopCategoryTotal decimal.Decimal

	// ModeCategory is the most frequently occurring category by record
	// count, which is not necessarily TopCategory.
	ModeCategory      string
	ModeCategoryCount int
}

// Summarize computes the aggregates for a RecordSet. An empty set yields
// zero totals and the placeholder category rather than an error.
//
// Ties on both TopCategory and ModeCategory resolve to the
// lexicographically smallest category name, so results are deterministic
// for any record order.
func Summarize(rs *models.RecordSet) Summary {
	summary := Summary{
		TotalAmount:  decimal.Zero,
		TopCategory:  models.CategoryNone,
		ModeCategory: models.CategoryNone,
	}
	if rs == nil || rs.IsEmpty() {
		return summary
	}

	summary.Records = rs.Records

	byCategory := make(map[string]*CategoryTotal)
	for _, r := range rs.Records {
		summary.TotalAmount = summary.TotalAmount.Add(r.Amount)

		ct, ok := byCategory[r.Category]
		if !ok {
			ct = &CategoryTotal{Category: r.Category, Total: decimal.Zero}
			byCategory[r.Category] = ct
		}
		ct.Total = ct.Total.Add(r.Amount)
		ct.Count++
	}

	for _, ct := range byCategory {
		summary.CategoryTotals = append(summary.CategoryTotals, *ct)
	}

	// Largest total first; name breaks ties so the order is stable.
	sort.Slice(summary.CategoryTotals, func(i, j int) bool {
		a, b := summary.CategoryTotals[i], summary.CategoryTotals[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Category < b.Category
	})

	summary.TopCategory = summary.CategoryTotals[0].Category
	summary.TopCategoryTotal = summary.CategoryTotals[0].Total

	mode := summary.CategoryTotals[0]
	for _, ct := range summary.CategoryTotals[1:] {
		if ct.Count > mode.Count || (ct.Count == mode.Count && ct.Category < mode.Category) {
			mode = ct
		}
	}
	summary.ModeCategory = mode.Category
	summary.ModeCategoryCount = mode.Count

	return summary
}

// Table renders the records as a header row plus one row per record in the
// canonical column order. Records missing a field render it empty.
func (s Summary) Table() [][]string {
	rows := make([][]string, 0, len(s.Records)+1)
	rows = append(rows, models.Columns)
	for _, r := range s.Records {
		rows = append(rows, r.Row())
	}
	return rows
}

// Digest renders the grouped totals as plain text for embedding in the
// commentary prompt.
func (s Summary) Digest() string {
	var b strings.Builder
	b.WriteString("Spending by category:\n")
	for _, ct := range s.CategoryTotals {
		b.WriteString("- " + ct.Category + ": " + ct.Total.StringFixed(2))
		b.WriteString("\n")
	}
	b.WriteString("Total spent: " + s.TotalAmount.StringFixed(2) + "\n")
	return b.String()
}
