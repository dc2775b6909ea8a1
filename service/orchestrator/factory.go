package orchestrator

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/elC0mpa/aws-cost-reporter/config"
	awscloudwatch "github.com/elC0mpa/aws-cost-reporter/service/aws/cloudwatch"
	awscostexplorer "github.com/elC0mpa/aws-cost-reporter/service/aws/costexplorer"
	awsses "github.com/elC0mpa/aws-cost-reporter/service/aws/ses"
	awssts "github.com/elC0mpa/aws-cost-reporter/service/aws/sts"
)

// NewFromConfig builds the AWS-backed pipeline. Metrics are published only
// when cfg.MetricsNamespace is set.
func NewFromConfig(cfg *config.Config, awsCfg aws.Config) *orchestratorService {
	s := NewService(
		awssts.NewService(awsCfg),
		awscostexplorer.NewService(awsCfg),
		awsses.NewService(awsCfg),
		cfg.ReportOptions(),
	)
	if cfg.MetricsNamespace != "" {
		s.WithMetricsService(awscloudwatch.NewService(awsCfg, cfg.MetricsNamespace))
	}
	return s
}
