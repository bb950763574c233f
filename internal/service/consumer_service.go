// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"roadmap-voting-be/internal/dto"
	"roadmap-voting-be/internal/pkg/logger"
	"roadmap-voting-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the submission-alert topic and emails the admin.
// Alerting is best effort and runs off the request path.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	mailer     mailer.IEmailService
	alertEmail string
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	alertEmail string,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		mailer:     emailService,
		alertEmail: alertEmail,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.FeatureSubmittedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal submission message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payload, retrying won't help
		return
	}

	if cs.alertEmail == "" {
		msg.Ack()
		return
	}

	if err := cs.mailer.SendSubmissionAlert(cs.alertEmail, payload.Title, payload.Id, payload.Email, payload.SubmittedAt); err != nil {
		cs.log.Error("consumer", "Failed to send submission alert", map[string]interface{}{
			"feature_id": payload.Id,
			"error":      err.Error(),
		})
		// Alerts are best effort, don't requeue
	}
	msg.Ack()
}
