package awscloudwatch

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/elC0mpa/aws-cost-reporter/model"
)

const (
	metricDailyCost = "DailyCost"
	dimensionUnit   = "Currency"
)

type cloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

type service struct {
	client    cloudWatchAPI
	namespace string
}

type CloudWatchService interface {
	PublishReport(ctx context.Context, report model.CostReport) error
}
