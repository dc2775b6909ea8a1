package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/elC0mpa/aws-cost-reporter/config"
	"github.com/elC0mpa/aws-cost-reporter/model"
	awsconfig "github.com/elC0mpa/aws-cost-reporter/service/aws/config"
	"github.com/elC0mpa/aws-cost-reporter/service/orchestrator"
	"github.com/elC0mpa/aws-cost-reporter/utils"
	"github.com/rs/zerolog"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.LogLevel, false)
	zerolog.DefaultContextLogger = &logger

	awsCfg, err := awsconfig.NewService().GetAWSCfg(context.Background(), cfg.Region, cfg.Profile)
	if err != nil {
		logger.Fatal().Err(err).Msg("unable to load AWS config")
	}

	orchestratorService := orchestrator.NewFromConfig(cfg, awsCfg)

	lambda.Start(func(ctx context.Context, event events.CloudWatchEvent) (model.InvocationResult, error) {
		logger.Info().Str("event_id", event.ID).Str("source", event.Source).Msg("cost report triggered")
		return orchestratorService.Handle(ctx, time.Now()), nil
	})
}
