package orchestrator

import (
	"context"
	"time"

	"github.com/elC0mpa/aws-cost-reporter/model"
	"github.com/elC0mpa/aws-cost-reporter/service"
)

type orchestratorService struct {
	identityService     service.IdentityService
	costService         service.CostService
	notificationService service.NotificationService
	metricsService      service.MetricsService
	opts                model.ReportOptions
}

type OrchestratorService interface {
	Run(ctx context.Context, now time.Time) (*model.ReportOutcome, error)
	Preview(ctx context.Context, now time.Time) (*model.ReportOutcome, error)
	Handle(ctx context.Context, now time.Time) model.InvocationResult
}
