package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/elC0mpa/aws-cost-reporter/config"
	"github.com/elC0mpa/aws-cost-reporter/model"
	awsconfig "github.com/elC0mpa/aws-cost-reporter/service/aws/config"
	"github.com/elC0mpa/aws-cost-reporter/service/flag"
	"github.com/elC0mpa/aws-cost-reporter/service/orchestrator"
	"github.com/elC0mpa/aws-cost-reporter/utils"
	"github.com/urfave/cli/v2"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	flagService := flag.NewService()

	app := &cli.App{
		Name:  "aws-cost-reporter",
		Usage: "Print or email the AWS cost report for the last days",
		Flags: flagService.Flags(cfg),
		Action: func(c *cli.Context) error {
			flags, err := flagService.GetParsedFlags(c)
			if err != nil {
				return err
			}
			return run(c.Context, cfg, flags)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, flags model.Flags) error {
	cfg.Region = flags.Region
	cfg.Profile = flags.Profile
	cfg.ReportDays = flags.Days
	cfg.Format = flags.Format
	cfg.LogLevel = flags.LogLevel
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := utils.NewLogger(cfg.LogLevel, true)
	ctx = logger.WithContext(ctx)

	utils.DrawBanner()
	utils.StartSpinner()

	awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, cfg.Region, cfg.Profile)
	if err != nil {
		utils.StopSpinner()
		return err
	}

	orchestratorService := orchestrator.NewFromConfig(cfg, awsCfg)

	var outcome *model.ReportOutcome
	if flags.Send {
		outcome, err = orchestratorService.Run(ctx, time.Now())
	} else {
		outcome, err = orchestratorService.Preview(ctx, time.Now())
	}
	utils.StopSpinner()
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\n\n", outcome.Subject)
	if cfg.Format == model.FormatText {
		fmt.Println(outcome.Body)
	} else {
		utils.DrawCostTable(outcome.Report)
	}
	if flags.Chart {
		utils.DrawDailyChart(outcome.Report)
	}
	if outcome.MessageID != "" {
		fmt.Printf("\nEmail sent: %s\n", outcome.MessageID)
	}
	return nil
}
