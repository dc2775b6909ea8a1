package model

import "net/http"

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// InvocationResult is what the function returns to its trigger. Body is a JSON document.
type InvocationResult struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

func (r InvocationResult) OK() bool {
	return r.StatusCode == http.StatusOK
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type SuccessBody struct {
	Message   string    `json:"message"`
	MessageID string    `json:"messageId"`
	TotalCost float64   `json:"totalCost"`
	Currency  string    `json:"currency"`
	DateRange DateRange `json:"dateRange"`
}

type FailureBody struct {
	Error     string `json:"error"`
	ErrorKind string `json:"errorKind"`
}

// ReportOutcome is everything a pipeline run produced
type ReportOutcome struct {
	Report    CostReport
	Subject   string
	Body      string
	MessageID string
}
