package awscostexplorer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/smithy-go"
	"github.com/elC0mpa/aws-cost-reporter/model"
	"github.com/shopspring/decimal"
)

type fakeCostExplorer struct {
	output *costexplorer.GetCostAndUsageOutput
	err    error
	calls  int
	input  *costexplorer.GetCostAndUsageInput
}

func (f *fakeCostExplorer) GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error) {
	f.calls++
	f.input = params
	return f.output, f.err
}

func metric(amount string) map[string]types.MetricValue {
	return map[string]types.MetricValue{
		costsAggregation: {Amount: aws.String(amount), Unit: aws.String("USD")},
	}
}

func period(start, end string) *types.DateInterval {
	return &types.DateInterval{Start: aws.String(start), End: aws.String(end)}
}

func testWindow() model.CostQueryWindow {
	return model.CostQueryWindow{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetDailyCostsGrouped(t *testing.T) {
	fake := &fakeCostExplorer{output: &costexplorer.GetCostAndUsageOutput{
		ResultsByTime: []types.ResultByTime{
			{
				TimePeriod: period("2024-01-01", "2024-01-02"),
				Groups: []types.Group{
					{Keys: []string{"Amazon Elastic Compute Cloud - Compute", "111111111111"}, Metrics: metric("12.50")},
					{Keys: []string{"Amazon Simple Storage Service", "111111111111"}, Metrics: metric("0.005")},
				},
			},
			{
				TimePeriod: period("2024-01-02", "2024-01-03"),
				Groups:     []types.Group{},
			},
		},
	}}
	s := &service{client: fake}

	items, err := s.GetDailyCosts(context.Background(), testWindow(), DimensionService, DimensionLinkedAccount)
	if err != nil {
		t.Fatalf("GetDailyCosts() error = %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	first := items[0]
	if first.Service != "Amazon Elastic Compute Cloud - Compute" || first.Account != "111111111111" {
		t.Errorf("first item keys = (%s, %s)", first.Service, first.Account)
	}
	if !first.Amount.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("first item amount = %s, want 12.50", first.Amount)
	}
	if first.Unit != "USD" {
		t.Errorf("first item unit = %s, want USD", first.Unit)
	}
	if got := first.Date.Format(model.DateLayout); got != "2024-01-01" {
		t.Errorf("first item date = %s, want 2024-01-01", got)
	}
	if !items[1].Amount.Equal(decimal.RequireFromString("0.005")) {
		t.Errorf("second item amount = %s, want 0.005", items[1].Amount)
	}

	in := fake.input
	if in.Granularity != types.GranularityDaily {
		t.Errorf("Granularity = %s, want DAILY", in.Granularity)
	}
	if len(in.Metrics) != 1 || in.Metrics[0] != "UnblendedCost" {
		t.Errorf("Metrics = %v, want [UnblendedCost]", in.Metrics)
	}
	if aws.ToString(in.TimePeriod.Start) != "2024-01-01" || aws.ToString(in.TimePeriod.End) != "2024-01-03" {
		t.Errorf("TimePeriod = [%s, %s)", aws.ToString(in.TimePeriod.Start), aws.ToString(in.TimePeriod.End))
	}
	if len(in.GroupBy) != 2 || aws.ToString(in.GroupBy[0].Key) != "SERVICE" || aws.ToString(in.GroupBy[1].Key) != "LINKED_ACCOUNT" {
		t.Errorf("GroupBy = %+v", in.GroupBy)
	}
}

func TestGetDailyCostsTotalOnly(t *testing.T) {
	fake := &fakeCostExplorer{output: &costexplorer.GetCostAndUsageOutput{
		ResultsByTime: []types.ResultByTime{
			{TimePeriod: period("2024-01-01", "2024-01-02"), Total: metric("42.4242")},
		},
	}}
	s := &service{client: fake}

	items, err := s.GetDailyCosts(context.Background(), testWindow())
	if err != nil {
		t.Fatalf("GetDailyCosts() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Service != "Total" {
		t.Errorf("Service = %s, want Total", items[0].Service)
	}
	if !items[0].Amount.Equal(decimal.RequireFromString("42.4242")) {
		t.Errorf("Amount = %s, want 42.4242", items[0].Amount)
	}
	if fake.input.GroupBy != nil {
		t.Errorf("GroupBy = %+v, want none", fake.input.GroupBy)
	}
}

func TestGetDailyCostsRejectsEmptyWindow(t *testing.T) {
	fake := &fakeCostExplorer{}
	s := &service{client: fake}
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.GetDailyCosts(context.Background(), model.CostQueryWindow{Start: day, End: day})

	var queryErr *model.UpstreamQueryError
	if !errors.As(err, &queryErr) {
		t.Fatalf("error = %v, want UpstreamQueryError", err)
	}
	if !errors.Is(err, model.ErrInvalidWindow) {
		t.Errorf("error = %v, want ErrInvalidWindow", err)
	}
	if fake.calls != 0 {
		t.Errorf("API called %d times, want 0", fake.calls)
	}
}

func TestGetDailyCostsTooManyDimensions(t *testing.T) {
	fake := &fakeCostExplorer{}
	s := &service{client: fake}

	_, err := s.GetDailyCosts(context.Background(), testWindow(), DimensionService, DimensionLinkedAccount, "REGION")
	if err == nil {
		t.Fatal("expected an error for three dimensions")
	}
	if fake.calls != 0 {
		t.Errorf("API called %d times, want 0", fake.calls)
	}
}

func TestGetDailyCostsAPIError(t *testing.T) {
	fake := &fakeCostExplorer{err: &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "denied"}}
	s := &service{client: fake}

	_, err := s.GetDailyCosts(context.Background(), testWindow(), DimensionService)

	var queryErr *model.UpstreamQueryError
	if !errors.As(err, &queryErr) {
		t.Fatalf("error = %v, want UpstreamQueryError", err)
	}
	if queryErr.Code != "AccessDeniedException" {
		t.Errorf("Code = %s, want AccessDeniedException", queryErr.Code)
	}
	if fake.calls != 1 {
		t.Errorf("API called %d times, want exactly 1", fake.calls)
	}
}

func TestGetDailyCostsBadAmount(t *testing.T) {
	fake := &fakeCostExplorer{output: &costexplorer.GetCostAndUsageOutput{
		ResultsByTime: []types.ResultByTime{
			{
				TimePeriod: period("2024-01-01", "2024-01-02"),
				Groups:     []types.Group{{Keys: []string{"AWS Lambda"}, Metrics: metric("not-a-number")}},
			},
		},
	}}
	s := &service{client: fake}

	_, err := s.GetDailyCosts(context.Background(), testWindow(), DimensionService)

	var queryErr *model.UpstreamQueryError
	if !errors.As(err, &queryErr) {
		t.Fatalf("error = %v, want UpstreamQueryError", err)
	}
}

func TestGetDailyCostsSkipsGroupsWithoutMetric(t *testing.T) {
	fake := &fakeCostExplorer{output: &costexplorer.GetCostAndUsageOutput{
		ResultsByTime: []types.ResultByTime{
			{
				TimePeriod: period("2024-01-01", "2024-01-02"),
				Groups: []types.Group{
					{Keys: []string{"Tax"}, Metrics: map[string]types.MetricValue{}},
					{Keys: []string{"AWS Lambda"}, Metrics: metric("-1.25")},
				},
			},
		},
		NextPageToken: aws.String("next"),
	}}
	s := &service{client: fake}

	items, err := s.GetDailyCosts(context.Background(), testWindow(), DimensionService)
	if err != nil {
		t.Fatalf("GetDailyCosts() error = %v", err)
	}
	if len(items) != 1 || items[0].Service != "AWS Lambda" {
		t.Fatalf("items = %+v, want only AWS Lambda", items)
	}
	if !items[0].Amount.Equal(decimal.RequireFromString("-1.25")) {
		t.Errorf("credit amount = %s, want -1.25", items[0].Amount)
	}
}
