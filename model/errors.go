package model

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

var ErrRender = errors.New("render report")

const (
	ErrorKindUpstreamQuery = "upstream_query"
	ErrorKindDelivery      = "delivery"
	ErrorKindRender        = "render"
	ErrorKindInternal      = "internal"
)

// UpstreamQueryError is returned when the cost query is rejected or its response cannot be read
type UpstreamQueryError struct {
	Op   string
	Code string
	Err  error
}

func NewUpstreamQueryError(op string, err error) *UpstreamQueryError {
	return &UpstreamQueryError{Op: op, Code: APIErrorCode(err), Err: err}
}

func (e *UpstreamQueryError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("cost query %s failed (%s): %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("cost query %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamQueryError) Unwrap() error {
	return e.Err
}

// DeliveryError is returned when the email service rejects a message
type DeliveryError struct {
	Op   string
	Code string
	Err  error
}

func NewDeliveryError(op string, err error) *DeliveryError {
	return &DeliveryError{Op: op, Code: APIErrorCode(err), Err: err}
}

func (e *DeliveryError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("email delivery %s failed (%s): %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("email delivery %s failed: %v", e.Op, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// APIErrorCode extracts the AWS error code, or "" when err did not come from an AWS API
func APIErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// ErrorKind classifies a pipeline error for the invocation result and logs
func ErrorKind(err error) string {
	var queryErr *UpstreamQueryError
	var deliveryErr *DeliveryError
	switch {
	case errors.As(err, &queryErr):
		return ErrorKindUpstreamQuery
	case errors.As(err, &deliveryErr):
		return ErrorKindDelivery
	case errors.Is(err, ErrRender):
		return ErrorKindRender
	default:
		return ErrorKindInternal
	}
}
