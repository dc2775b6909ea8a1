package response

import (
	"github.com/elC0mpa/aws-cost-reporter/model"
	"github.com/elC0mpa/aws-cost-reporter/service/renderer"
)

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		Provider:    info.Provider,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertCostReport converts a report outcome to response.CostReport.
// EndDate is the last day included in the report.
func ConvertCostReport(outcome *model.ReportOutcome) *CostReport {
	if outcome == nil {
		return nil
	}
	report := outcome.Report

	days := make([]DailyCost, 0, len(report.Days))
	for _, day := range report.Days {
		services := make([]ServiceCost, 0, len(day.Services))
		for _, item := range day.Services {
			services = append(services, ServiceCost{
				Name:     item.Service,
				Account:  item.Account,
				Amount:   item.Amount.Round(2).InexactFloat64(),
				Severity: string(renderer.Classify(item.Amount)),
			})
		}
		days = append(days, DailyCost{
			Date:     day.Date.Format(model.DateLayout),
			Total:    day.DailyTotal.Round(2).InexactFloat64(),
			Services: services,
		})
	}

	return &CostReport{
		AccountID: report.AccountID,
		StartDate: report.Window.StartString(),
		EndDate:   report.Window.LastDay().Format(model.DateLayout),
		Total:     report.Total.Round(2).InexactFloat64(),
		Currency:  report.Unit,
		Subject:   outcome.Subject,
		Days:      days,
	}
}

// ConvertSendResult converts a delivered report outcome to response.SendResult
func ConvertSendResult(outcome *model.ReportOutcome) *SendResult {
	if outcome == nil {
		return nil
	}
	return &SendResult{
		MessageID: outcome.MessageID,
		Report:    *ConvertCostReport(outcome),
	}
}
