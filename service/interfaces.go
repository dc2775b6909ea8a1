package service

import (
	"context"

	"github.com/elC0mpa/aws-cost-reporter/model"
)

// IdentityService provides cloud account identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// CostService queries daily costs, optionally grouped by up to two dimensions
type CostService interface {
	GetDailyCosts(ctx context.Context, window model.CostQueryWindow, dimensions ...string) ([]model.CostLineItem, error)
}

// NotificationService delivers a rendered report and returns the delivery identifier
type NotificationService interface {
	Send(ctx context.Context, msg model.EmailMessage) (string, error)
}

// MetricsService publishes report figures to a metrics backend
type MetricsService interface {
	PublishReport(ctx context.Context, report model.CostReport) error
}
