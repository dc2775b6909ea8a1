// Package aggregator turns raw daily cost line items into a CostReport.
package aggregator

import (
	"sort"

	"github.com/elC0mpa/aws-cost-reporter/model"
	"github.com/shopspring/decimal"
)

const DefaultUnit = "USD"

// SignificanceThreshold is the amount a line item must exceed to be listed in a day's breakdown.
// It is absolute and applies whatever the currency unit.
var SignificanceThreshold = decimal.RequireFromString("0.01")

// Aggregate groups items by day over the whole window. Every date of the window
// is present in the result, in order, even when it has no items. Daily totals
// include every item; only the displayed list is filtered.
func Aggregate(window model.CostQueryWindow, items []model.CostLineItem) model.CostReport {
	days := window.Days()
	breakdown := make([]model.DailyBreakdown, len(days))
	index := make(map[string]int, len(days))
	for i, day := range days {
		breakdown[i] = model.DailyBreakdown{
			Date:       day,
			DailyTotal: decimal.Zero,
			Services:   []model.CostLineItem{},
		}
		index[day.Format(model.DateLayout)] = i
	}

	unit := ""
	for _, item := range items {
		i, ok := index[item.Date.Format(model.DateLayout)]
		if !ok {
			continue
		}

		day := &breakdown[i]
		day.DailyTotal = day.DailyTotal.Add(item.Amount)
		if unit == "" {
			unit = item.Unit
		}
		if item.Amount.GreaterThan(SignificanceThreshold) {
			day.Services = append(day.Services, item)
		}
	}

	total := decimal.Zero
	for i := range breakdown {
		orderServices(breakdown[i].Services)
		total = total.Add(breakdown[i].DailyTotal)
	}

	if unit == "" {
		unit = DefaultUnit
	}

	return model.CostReport{
		Window: window,
		Total:  total,
		Unit:   unit,
		Days:   breakdown,
	}
}

// orderServices sorts by amount descending; equal amounts keep response order
func orderServices(services []model.CostLineItem) {
	sort.SliceStable(services, func(i, j int) bool {
		return services[i].Amount.GreaterThan(services[j].Amount)
	})
}
