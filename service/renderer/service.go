// Package renderer builds the email subject and body of a cost report.
package renderer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/elC0mpa/aws-cost-reporter/model"
	"github.com/shopspring/decimal"
)

var (
	highThreshold   = decimal.NewFromInt(10)
	mediumThreshold = decimal.NewFromInt(5)
)

// Recommendations is the static footer of the HTML report
var Recommendations = []string{
	"Review unused resources and terminate them",
	"Consider Reserved Instances for predictable workloads",
	"Implement auto-scaling to optimize resource usage",
	"Set up cost alerts for budget monitoring",
}

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"money":         Money,
	"fdate":         func(t time.Time) string { return t.Format(model.DateLayout) },
	"severityClass": func(amount decimal.Decimal) string { return string(Classify(amount)) + "-cost" },
}).Parse(reportTemplate))

type reportView struct {
	Report          model.CostReport
	GeneratedAt     string
	AccountID       string
	Start           string
	LastDay         string
	Recommendations []string
}

// Classify maps an amount to its severity band, checking high first
func Classify(amount decimal.Decimal) model.Severity {
	switch {
	case amount.GreaterThan(highThreshold):
		return model.SeverityHigh
	case amount.GreaterThan(mediumThreshold):
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}

// Money formats an amount the way the report shows it, e.g. $12.51
func Money(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func Subject(report model.CostReport) string {
	w := report.Window
	if len(w.Days()) == 1 {
		return fmt.Sprintf("AWS Daily Cost Report: %s", w.StartString())
	}
	return fmt.Sprintf("AWS Cost Report - %s to %s", w.StartString(), w.LastDay().Format(model.DateLayout))
}

// Render builds the report body. It has no side effects.
func Render(report model.CostReport, format model.Format, generatedAt time.Time) (string, error) {
	switch format {
	case model.FormatText:
		return renderText(report), nil
	case model.FormatHTML:
		return renderHTML(report, generatedAt)
	default:
		return "", fmt.Errorf("%w: unknown format %q", model.ErrRender, format)
	}
}

func renderText(report model.CostReport) string {
	w := report.Window
	period := w.StartString()
	if len(w.Days()) > 1 {
		period = fmt.Sprintf("%s to %s", w.StartString(), w.LastDay().Format(model.DateLayout))
	}
	return fmt.Sprintf("Your AWS cost for %s was %s.", period, Money(report.Total))
}

func renderHTML(report model.CostReport, generatedAt time.Time) (string, error) {
	view := reportView{
		Report:          report,
		GeneratedAt:     generatedAt.Format(model.DateLayout),
		AccountID:       report.AccountID,
		Start:           report.Window.StartString(),
		LastDay:         report.Window.LastDay().Format(model.DateLayout),
		Recommendations: Recommendations,
	}

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrRender, err)
	}
	return buf.String(), nil
}
