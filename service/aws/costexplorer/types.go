package awscostexplorer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/elC0mpa/aws-cost-reporter/model"
)

const (
	costsAggregation = "UnblendedCost"

	DimensionService       = "SERVICE"
	DimensionLinkedAccount = "LINKED_ACCOUNT"

	// Cost Explorer accepts at most two group definitions per query
	maxDimensions = 2

	totalKey = "Total"
)

type costExplorerAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

type service struct {
	client costExplorerAPI
}

type CostService interface {
	GetDailyCosts(ctx context.Context, window model.CostQueryWindow, dimensions ...string) ([]model.CostLineItem, error)
}
