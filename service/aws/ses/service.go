package awsses

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/elC0mpa/aws-cost-reporter/model"
	"github.com/rs/zerolog"
)

const opSendEmail = "SendEmail"

func NewService(awsconfig aws.Config) *service {
	return &service{
		client: ses.NewFromConfig(awsconfig),
	}
}

// Send implements service.NotificationService. It makes exactly one SendEmail call.
func (s *service) Send(ctx context.Context, msg model.EmailMessage) (string, error) {
	logger := zerolog.Ctx(ctx)

	if len(msg.To) == 0 {
		return "", &model.DeliveryError{Op: opSendEmail, Err: errors.New("no recipient configured")}
	}
	if msg.From == "" {
		return "", &model.DeliveryError{Op: opSendEmail, Err: errors.New("no sender configured")}
	}

	content := &types.Content{
		Data:    aws.String(msg.Body),
		Charset: aws.String(charset),
	}
	body := &types.Body{}
	if msg.Format == model.FormatHTML {
		body.Html = content
	} else {
		body.Text = content
	}

	input := &ses.SendEmailInput{
		Source: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: msg.To,
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String(charset),
			},
			Body: body,
		},
	}

	output, err := s.client.SendEmail(ctx, input)
	if err != nil {
		deliveryErr := model.NewDeliveryError(opSendEmail, err)
		logger.Error().Err(err).Str("code", deliveryErr.Code).Strs("to", msg.To).Msg("error sending email")
		return "", deliveryErr
	}

	messageID := aws.ToString(output.MessageId)
	logger.Info().Str("message_id", messageID).Strs("to", msg.To).Msg("email sent successfully")
	return messageID, nil
}
