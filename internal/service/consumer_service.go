package service

import (
	"context"
	"encoding/json"
	"log"

	"worksuite-be/internal/dto"
	"worksuite-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process email queue so SMTP latency never
// sits on a request path.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
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
	var job dto.BillingEmailMessage
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		log.Printf("[ERROR] Failed to unmarshal email job: %v", err)
		msg.Ack() // malformed jobs are not retriable
		return
	}

	var err error
	switch job.Kind {
	case "trial_started":
		err = cs.emailService.SendTrialStarted(job.To, job.PlanName, job.ExpiresAt)
	case "order_completed":
		err = cs.emailService.SendOrderCompleted(job.To, job.PlanName, job.Amount)
	case "order_rejected":
		err = cs.emailService.SendOrderRejected(job.To, job.PlanName, job.Reason)
	case "request_decided":
		err = cs.emailService.SendRequestDecided(job.To, job.PlanName, job.Decision)
	default:
		log.Printf("[WARN] Unknown email job kind %q", job.Kind)
		msg.Ack()
		return
	}

	if err != nil {
		log.Printf("[ERROR] Failed to send %s email to %s: %v", job.Kind, job.To, err)
		msg.Nack()
		return
	}
	msg.Ack()
}
