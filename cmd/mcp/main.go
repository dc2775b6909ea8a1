package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/aws-cost-reporter/cmd/mcp/tools"
	"github.com/elC0mpa/aws-cost-reporter/config"
	"github.com/elC0mpa/aws-cost-reporter/utils"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the MCP protocol, logs go to stderr
	logger := utils.NewLogger(cfg.LogLevel, true)
	zerolog.DefaultContextLogger = &logger

	s := server.NewMCPServer(
		"aws-cost-reporter-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterAWSTools(s, cfg)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
