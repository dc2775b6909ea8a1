package awsses

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/elC0mpa/aws-cost-reporter/model"
)

const charset = "UTF-8"

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type service struct {
	client sesAPI
}

type SESService interface {
	Send(ctx context.Context, msg model.EmailMessage) (string, error)
}
