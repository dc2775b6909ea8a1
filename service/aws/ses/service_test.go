package awsses

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/smithy-go"
	"github.com/elC0mpa/aws-cost-reporter/model"
)

type fakeSES struct {
	input *ses.SendEmailInput
	calls int
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.calls++
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("0100018d-abc")}, nil
}

func TestSendHTML(t *testing.T) {
	fake := &fakeSES{}
	s := &service{client: fake}

	id, err := s.Send(context.Background(), model.EmailMessage{
		Subject: "AWS Cost Report - 2024-01-01 to 2024-01-07",
		Body:    "<html><body>report</body></html>",
		Format:  model.FormatHTML,
		From:    "cost-reports@example.com",
		To:      []string{"admin@example.com", "finance@example.com"},
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if id != "0100018d-abc" {
		t.Errorf("message id = %s, want 0100018d-abc", id)
	}

	in := fake.input
	if aws.ToString(in.Source) != "cost-reports@example.com" {
		t.Errorf("Source = %s", aws.ToString(in.Source))
	}
	if len(in.Destination.ToAddresses) != 2 {
		t.Errorf("ToAddresses = %v, want two recipients", in.Destination.ToAddresses)
	}
	if in.Message.Body.Html == nil || in.Message.Body.Text != nil {
		t.Fatalf("expected an HTML body only, got %+v", in.Message.Body)
	}
	if aws.ToString(in.Message.Body.Html.Charset) != "UTF-8" {
		t.Errorf("Charset = %s, want UTF-8", aws.ToString(in.Message.Body.Html.Charset))
	}
	if aws.ToString(in.Message.Subject.Data) != "AWS Cost Report - 2024-01-01 to 2024-01-07" {
		t.Errorf("Subject = %s", aws.ToString(in.Message.Subject.Data))
	}
}

func TestSendText(t *testing.T) {
	fake := &fakeSES{}
	s := &service{client: fake}

	_, err := s.Send(context.Background(), model.EmailMessage{
		Subject: "AWS Daily Cost Report: 2024-01-01",
		Body:    "Your AWS cost for 2024-01-01 was $12.51.",
		Format:  model.FormatText,
		From:    "cost-reports@example.com",
		To:      []string{"admin@example.com"},
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if fake.input.Message.Body.Text == nil || fake.input.Message.Body.Html != nil {
		t.Fatalf("expected a text body only, got %+v", fake.input.Message.Body)
	}
	if got := aws.ToString(fake.input.Message.Body.Text.Data); got != "Your AWS cost for 2024-01-01 was $12.51." {
		t.Errorf("body = %s", got)
	}
}

func TestSendRejected(t *testing.T) {
	fake := &fakeSES{err: &smithy.GenericAPIError{Code: "MessageRejected", Message: "Email address is not verified."}}
	s := &service{client: fake}

	_, err := s.Send(context.Background(), model.EmailMessage{
		From: "cost-reports@example.com",
		To:   []string{"admin@example.com"},
	})

	var deliveryErr *model.DeliveryError
	if !errors.As(err, &deliveryErr) {
		t.Fatalf("error = %v, want DeliveryError", err)
	}
	if deliveryErr.Code != "MessageRejected" {
		t.Errorf("Code = %s, want MessageRejected", deliveryErr.Code)
	}
	if fake.calls != 1 {
		t.Errorf("SendEmail called %d times, want exactly 1", fake.calls)
	}
}

func TestSendWithoutRecipient(t *testing.T) {
	fake := &fakeSES{}
	s := &service{client: fake}

	_, err := s.Send(context.Background(), model.EmailMessage{From: "cost-reports@example.com"})

	var deliveryErr *model.DeliveryError
	if !errors.As(err, &deliveryErr) {
		t.Fatalf("error = %v, want DeliveryError", err)
	}
	if fake.calls != 0 {
		t.Errorf("SendEmail called %d times, want 0", fake.calls)
	}
}
