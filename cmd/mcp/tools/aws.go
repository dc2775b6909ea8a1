package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elC0mpa/aws-cost-reporter/cmd/mcp/response"
	"github.com/elC0mpa/aws-cost-reporter/config"
	"github.com/elC0mpa/aws-cost-reporter/model"
	awsconfig "github.com/elC0mpa/aws-cost-reporter/service/aws/config"
	awssts "github.com/elC0mpa/aws-cost-reporter/service/aws/sts"
	"github.com/elC0mpa/aws-cost-reporter/service/orchestrator"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAWSTools registers all AWS tools with the MCP server
func RegisterAWSTools(s *server.MCPServer, cfg *config.Config) {
	s.AddTool(
		mcp.NewTool("aws_get_account_info",
			mcp.WithDescription("Get AWS account identity information including account ID and ARN"),
		),
		makeAWSAccountInfoHandler(cfg),
	)

	s.AddTool(
		mcp.NewTool("aws_get_daily_cost_report",
			mcp.WithDescription("Get the daily AWS cost report for the last days, broken down by service and linked account. Nothing is emailed."),
			mcp.WithNumber("days", mcp.Description("Number of days to report, ending yesterday (default from REPORT_DAYS)")),
			mcp.WithString("format", mcp.Description("Report format: text or html"), mcp.Enum("text", "html")),
		),
		makeAWSDailyCostReportHandler(cfg),
	)

	s.AddTool(
		mcp.NewTool("aws_send_cost_report",
			mcp.WithDescription("Build the daily AWS cost report and email it through Amazon SES to the configured recipients"),
			mcp.WithNumber("days", mcp.Description("Number of days to report, ending yesterday (default from REPORT_DAYS)")),
			mcp.WithString("format", mcp.Description("Report format: text or html"), mcp.Enum("text", "html")),
		),
		makeAWSSendCostReportHandler(cfg),
	)
}

func makeAWSAccountInfoHandler(cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		configSvc := awsconfig.NewService()
		awsCfg, err := configSvc.GetAWSCfg(ctx, cfg.Region, cfg.Profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		stsSvc := awssts.NewService(awsCfg)
		info, err := stsSvc.GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get account info: %v", err)), nil
		}

		resp := response.ConvertAccountInfo(info)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeAWSDailyCostReportHandler(cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orch, err := newOrchestrator(ctx, cfg, request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		outcome, err := orch.Preview(ctx, time.Now())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build cost report (%s): %v", model.ErrorKind(err), err)), nil
		}

		resp := response.ConvertCostReport(outcome)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeAWSSendCostReportHandler(cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orch, err := newOrchestrator(ctx, cfg, request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		outcome, err := orch.Run(ctx, time.Now())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to send cost report (%s): %v", model.ErrorKind(err), err)), nil
		}

		resp := response.ConvertSendResult(outcome)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

// reportConfig applies the optional days/format arguments on a copy of cfg
func reportConfig(cfg *config.Config, request mcp.CallToolRequest) (*config.Config, error) {
	reportCfg := *cfg
	reportCfg.ReportDays = request.GetInt("days", cfg.ReportDays)
	reportCfg.Format = model.Format(request.GetString("format", string(cfg.Format)))
	if err := reportCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return &reportCfg, nil
}

func newOrchestrator(ctx context.Context, cfg *config.Config, request mcp.CallToolRequest) (orchestrator.OrchestratorService, error) {
	reportCfg, err := reportConfig(cfg, request)
	if err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, reportCfg.Region, reportCfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to configure AWS: %w", err)
	}

	return orchestrator.NewFromConfig(reportCfg, awsCfg), nil
}
