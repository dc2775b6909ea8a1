package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CostLineItem is one grouped amount returned by the cost query for a single day
type CostLineItem struct {
	Date    time.Time
	Service string
	Account string
	Amount  decimal.Decimal
	Unit    string
}

// Label is the display name of the line item: the service, plus the linked account when grouped by it
func (c CostLineItem) Label() string {
	if c.Account == "" {
		return c.Service
	}
	return fmt.Sprintf("%s (%s)", c.Service, c.Account)
}

// DailyBreakdown holds the costs of a single day
type DailyBreakdown struct {
	Date       time.Time
	DailyTotal decimal.Decimal
	// Services only lists significant line items, sorted by amount descending
	Services []CostLineItem
}

// CostReport is the aggregated result of one cost query
type CostReport struct {
	Window    CostQueryWindow
	Total     decimal.Decimal
	Unit      string
	Days      []DailyBreakdown
	AccountID string
}

// Severity is the display band of a cost amount
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Format selects how a report body is rendered
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatHTML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown report format %q (expected %q or %q)", s, FormatText, FormatHTML)
	}
}

// ReportOptions parameterizes a pipeline run
type ReportOptions struct {
	Days       int
	Format     Format
	Dimensions []string
	From       string
	To         []string
}
