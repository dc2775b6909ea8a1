package awscloudwatch

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/elC0mpa/aws-cost-reporter/model"
	"github.com/rs/zerolog"
)

func NewService(awsconfig aws.Config, namespace string) *service {
	return &service{
		client:    cloudwatch.NewFromConfig(awsconfig),
		namespace: namespace,
	}
}

// PublishReport puts one DailyCost datum per day of the report, timestamped at that day.
func (s *service) PublishReport(ctx context.Context, report model.CostReport) error {
	if len(report.Days) == 0 {
		return nil
	}

	data := make([]types.MetricDatum, 0, len(report.Days))
	for _, day := range report.Days {
		data = append(data, types.MetricDatum{
			MetricName: aws.String(metricDailyCost),
			Timestamp:  aws.Time(day.Date),
			Value:      aws.Float64(day.DailyTotal.InexactFloat64()),
			Unit:       types.StandardUnitNone,
			Dimensions: []types.Dimension{
				{Name: aws.String(dimensionUnit), Value: aws.String(report.Unit)},
			},
		})
	}

	_, err := s.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(s.namespace),
		MetricData: data,
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("namespace", s.namespace).
			Str("error_code", model.APIErrorCode(err)).
			Msg("error publishing cost metrics")
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}
