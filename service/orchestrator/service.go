package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/elC0mpa/aws-cost-reporter/model"
	"github.com/elC0mpa/aws-cost-reporter/service"
	"github.com/elC0mpa/aws-cost-reporter/service/aggregator"
	"github.com/elC0mpa/aws-cost-reporter/service/renderer"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NewService wires the pipeline. identityService may be nil, in which case
// the report is rendered without an account id.
func NewService(identityService service.IdentityService, costService service.CostService, notificationService service.NotificationService, opts model.ReportOptions) *orchestratorService {
	return &orchestratorService{
		identityService:     identityService,
		costService:         costService,
		notificationService: notificationService,
		opts:                opts,
	}
}

// WithMetricsService makes Run publish the daily totals before sending the email.
func (s *orchestratorService) WithMetricsService(metricsService service.MetricsService) *orchestratorService {
	s.metricsService = metricsService
	return s
}

// Run fetches, aggregates, renders and sends the report for the window ending today.
func (s *orchestratorService) Run(ctx context.Context, now time.Time) (*model.ReportOutcome, error) {
	ctx = withRunLogger(ctx)
	logger := zerolog.Ctx(ctx)

	outcome, err := s.build(ctx, now)
	if err != nil {
		return nil, err
	}

	if s.metricsService != nil {
		if err := s.metricsService.PublishReport(ctx, outcome.Report); err != nil {
			logger.Warn().Err(err).Msg("cost metrics not published")
		}
	}

	messageID, err := s.notificationService.Send(ctx, model.EmailMessage{
		Subject: outcome.Subject,
		Body:    outcome.Body,
		Format:  s.opts.Format,
		From:    s.opts.From,
		To:      s.opts.To,
	})
	if err != nil {
		logger.Error().Err(err).Str("subject", outcome.Subject).Msg("report computed but not delivered")
		return nil, fmt.Errorf("send report: %w", err)
	}
	outcome.MessageID = messageID

	logger.Info().
		Str("message_id", messageID).
		Str("total_cost", outcome.Report.Total.StringFixed(2)).
		Msg("cost report sent")
	return outcome, nil
}

// Preview runs the pipeline without delivering anything.
func (s *orchestratorService) Preview(ctx context.Context, now time.Time) (*model.ReportOutcome, error) {
	return s.build(withRunLogger(ctx), now)
}

func (s *orchestratorService) build(ctx context.Context, now time.Time) (*model.ReportOutcome, error) {
	logger := zerolog.Ctx(ctx)
	window := model.NewWindow(now, s.opts.Days)

	logger.Info().
		Str("start", window.StartString()).
		Str("end", window.EndString()).
		Str("format", string(s.opts.Format)).
		Msg("building cost report")

	items, err := s.costService.GetDailyCosts(ctx, window, s.opts.Dimensions...)
	if err != nil {
		return nil, fmt.Errorf("fetch costs: %w", err)
	}

	report := aggregator.Aggregate(window, items)
	report.AccountID = s.accountID(ctx)

	body, err := renderer.Render(report, s.opts.Format, now)
	if err != nil {
		logger.Error().Err(err).Msg("error rendering report")
		return nil, err
	}

	return &model.ReportOutcome{
		Report:  report,
		Subject: renderer.Subject(report),
		Body:    body,
	}, nil
}

// accountID only decorates the report header, so a failed lookup is not fatal.
func (s *orchestratorService) accountID(ctx context.Context) string {
	if s.identityService == nil {
		return ""
	}
	info, err := s.identityService.GetAccountInfo(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("could not resolve account id")
		return ""
	}
	return info.AccountID
}

func withRunLogger(ctx context.Context) context.Context {
	logger := zerolog.Ctx(ctx).With().Str("run_id", uuid.NewString()).Logger()
	return logger.WithContext(ctx)
}
