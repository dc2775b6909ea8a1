package awscostexplorer

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/elC0mpa/aws-cost-reporter/model"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const opGetCostAndUsage = "GetCostAndUsage"

func NewService(awsconfig aws.Config) *service {
	client := costexplorer.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// GetDailyCosts issues a single daily UnblendedCost query for the window.
// Results are not paginated: a window of a few days fits in one response.
func (s *service) GetDailyCosts(ctx context.Context, window model.CostQueryWindow, dimensions ...string) ([]model.CostLineItem, error) {
	logger := zerolog.Ctx(ctx)

	if err := window.Validate(); err != nil {
		return nil, &model.UpstreamQueryError{Op: opGetCostAndUsage, Err: err}
	}
	if len(dimensions) > maxDimensions {
		return nil, &model.UpstreamQueryError{
			Op:  opGetCostAndUsage,
			Err: fmt.Errorf("at most %d group-by dimensions are supported, got %d", maxDimensions, len(dimensions)),
		}
	}

	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityDaily,
		TimePeriod: &types.DateInterval{
			Start: aws.String(window.StartString()),
			End:   aws.String(window.EndString()),
		},
		Metrics: []string{costsAggregation},
		GroupBy: s.groupDefinitions(dimensions),
	}

	logger.Info().
		Str("start", window.StartString()).
		Str("end", window.EndString()).
		Strs("group_by", dimensions).
		Msg("fetching cost data")

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		queryErr := model.NewUpstreamQueryError(opGetCostAndUsage, err)
		logger.Error().Err(err).Str("code", queryErr.Code).Msg("error getting cost data")
		return nil, queryErr
	}

	if output.NextPageToken != nil {
		logger.Warn().Msg("cost data is paginated, only the first page is reported")
	}

	items := make([]model.CostLineItem, 0)
	for _, result := range output.ResultsByTime {
		date, err := s.resultDate(result)
		if err != nil {
			return nil, &model.UpstreamQueryError{Op: opGetCostAndUsage, Err: err}
		}

		if len(dimensions) == 0 {
			item, ok, err := s.lineItem(date, []string{totalKey}, result.Total)
			if err != nil {
				return nil, &model.UpstreamQueryError{Op: opGetCostAndUsage, Err: err}
			}
			if ok {
				items = append(items, item)
			}
			continue
		}

		for _, group := range result.Groups {
			item, ok, err := s.lineItem(date, group.Keys, group.Metrics)
			if err != nil {
				return nil, &model.UpstreamQueryError{Op: opGetCostAndUsage, Err: err}
			}
			if ok {
				items = append(items, item)
			}
		}
	}

	logger.Debug().Int("line_items", len(items)).Msg("cost data fetched")
	return items, nil
}

func (s *service) groupDefinitions(dimensions []string) []types.GroupDefinition {
	if len(dimensions) == 0 {
		return nil
	}

	groups := make([]types.GroupDefinition, 0, len(dimensions))
	for _, d := range dimensions {
		groups = append(groups, types.GroupDefinition{
			Key:  aws.String(d),
			Type: types.GroupDefinitionTypeDimension,
		})
	}
	return groups
}

func (s *service) resultDate(result types.ResultByTime) (time.Time, error) {
	if result.TimePeriod == nil || result.TimePeriod.Start == nil {
		return time.Time{}, fmt.Errorf("result without time period")
	}
	date, err := time.Parse(model.DateLayout, *result.TimePeriod.Start)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse result date %q: %w", *result.TimePeriod.Start, err)
	}
	return date, nil
}

// lineItem converts one group's metrics. ok is false when the metric is absent.
func (s *service) lineItem(date time.Time, keys []string, metrics map[string]types.MetricValue) (model.CostLineItem, bool, error) {
	metric, found := metrics[costsAggregation]
	if !found || metric.Amount == nil {
		return model.CostLineItem{}, false, nil
	}

	amount, err := decimal.NewFromString(*metric.Amount)
	if err != nil {
		return model.CostLineItem{}, false, fmt.Errorf("parse amount %q for %v: %w", *metric.Amount, keys, err)
	}

	item := model.CostLineItem{
		Date:   date,
		Amount: amount,
		Unit:   aws.ToString(metric.Unit),
	}
	if len(keys) > 0 {
		item.Service = keys[0]
	}
	if len(keys) > 1 {
		item.Account = keys[1]
	}
	return item, true, nil
}
