package utils

import (
	"fmt"

	"github.com/elC0mpa/aws-cost-reporter/model"
	"github.com/elC0mpa/aws-cost-reporter/service/renderer"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
)

func DrawCostTable(report model.CostReport) {
	fmt.Println(RenderCostTable(report))
}

// RenderCostTable lays the daily breakdown out as a terminal table, one row per displayed service
func RenderCostTable(report model.CostReport) string {
	tw := table.NewWriter()
	tw.SetTitle(fmt.Sprintf("Account %s", accountLabel(report.AccountID)))
	tw.AppendHeader(table.Row{"Date", "Service", "Cost", "Severity"})

	for _, day := range report.Days {
		date := day.Date.Format(model.DateLayout)
		tw.AppendRow(table.Row{
			text.FgHiWhite.Sprint(date),
			text.FgHiWhite.Sprint("Daily Total"),
			text.FgHiWhite.Sprintf("%s %s", day.DailyTotal.StringFixed(2), report.Unit),
			"",
		})
		for _, svc := range day.Services {
			color := severityColor(svc.Amount)
			tw.AppendRow(table.Row{
				"",
				color.Sprint(svc.Label()),
				color.Sprintf("%s %s", svc.Amount.StringFixed(2), report.Unit),
				color.Sprint(renderer.Classify(svc.Amount)),
			})
		}
		tw.AppendSeparator()
	}

	tw.AppendFooter(table.Row{"", "Total Costs", fmt.Sprintf("%s %s", report.Total.StringFixed(2), report.Unit), ""})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignCenter},
	})

	return tw.Render()
}

func severityColor(amount decimal.Decimal) text.Color {
	switch renderer.Classify(amount) {
	case model.SeverityHigh:
		return text.FgHiRed
	case model.SeverityMedium:
		return text.FgHiYellow
	default:
		return text.FgGreen
	}
}

func accountLabel(accountID string) string {
	if accountID == "" {
		return "unknown"
	}
	return accountID
}
