package orchestrator

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/elC0mpa/aws-cost-reporter/model"
	"github.com/rs/zerolog"
)

// Handle runs the pipeline once and converts the outcome into an invocation
// result. Every error becomes a 500 result; Handle itself never fails.
func (s *orchestratorService) Handle(ctx context.Context, now time.Time) model.InvocationResult {
	outcome, err := s.Run(ctx, now)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("error_kind", model.ErrorKind(err)).Msg("error in cost report handler")
		return failure(err)
	}

	window := outcome.Report.Window
	return result(model.StatusSuccess, http.StatusOK, model.SuccessBody{
		Message:   "Cost report sent successfully",
		MessageID: outcome.MessageID,
		TotalCost: outcome.Report.Total.InexactFloat64(),
		Currency:  outcome.Report.Unit,
		DateRange: model.DateRange{
			Start: window.StartString(),
			End:   window.EndString(),
		},
	})
}

func failure(err error) model.InvocationResult {
	return result(model.StatusFailure, http.StatusInternalServerError, model.FailureBody{
		Error:     err.Error(),
		ErrorKind: model.ErrorKind(err),
	})
}

func result(status string, code int, body any) model.InvocationResult {
	data, err := json.Marshal(body)
	if err != nil {
		return model.InvocationResult{
			Status:     model.StatusFailure,
			StatusCode: http.StatusInternalServerError,
			Body:       `{"error":"could not encode result","errorKind":"internal"}`,
		}
	}
	return model.InvocationResult{Status: status, StatusCode: code, Body: string(data)}
}
