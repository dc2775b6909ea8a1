package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/aws-cost-reporter/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
	ColorRank7 = "#006837"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawDailyChart draws one bar per day of the report, the most expensive days in the warmest colours
func DrawDailyChart(report model.CostReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 💸  AWS DAILY COSTS"))
	fmt.Printf(" Account ID: %s\n", text.FgBlue.Sprint(accountLabel(report.AccountID)))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	bc := barchart.New(16*len(report.Days)+2, 20)

	indexedColors := assignRankedColors(report.Days)

	for idx, day := range report.Days {
		bc.Push(barchart.BarData{
			Label: getBarLabel(day, report.Unit),
			Values: []barchart.BarValue{
				{
					Value: day.DailyTotal.InexactFloat64(),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		})
	}

	bc.Draw()
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, defaultStyle.Render(bc.View())))
}

func getBarLabel(day model.DailyBreakdown, unit string) string {
	return fmt.Sprintf("%s: %s %s", day.Date.Format("Jan 02"), day.DailyTotal.StringFixed(2), unit)
}

// assignRankedColors gives the highest daily totals the first palette colours.
// Days ranked beyond the palette get the last colour.
func assignRankedColors(days []model.DailyBreakdown) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6, ColorRank7}

	order := make([]int, len(days))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return days[order[i]].DailyTotal.GreaterThan(days[order[j]].DailyTotal)
	})

	colors := make([]string, len(days))
	for rank, idx := range order {
		if rank < len(palette) {
			colors[idx] = palette[rank]
		} else {
			colors[idx] = palette[len(palette)-1]
		}
	}
	return colors
}
