package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"worksuite-be/internal/dto"
	"worksuite-be/internal/entity"
	"worksuite-be/internal/pkg/logger"
	"worksuite-be/internal/repository/specification"
	"worksuite-be/internal/repository/unitofwork"
	"worksuite-be/pkg/events"
	pktNats "worksuite-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// NotificationService bridges the event bus and the email queue: it listens
// to billing events on NATS, resolves the tenant owner's address and hands
// the prepared email job to the in-process worker.
type NotificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	publisher  message.Publisher
	emailTopic string
	logger     logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	sub *pktNats.Subscriber,
	publisher message.Publisher,
	emailTopic string,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		uowFactory: uowFactory,
		subscriber: sub,
		publisher:  publisher,
		emailTopic: emailTopic,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "billing-notif-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start event subscriber", map[string]interface{}{"error": err.Error()})
	}
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	eventType := event.EventType()
	// Subjects arrive as "events.<TYPE>".
	eventType = strings.TrimPrefix(eventType, "events.")

	data := event.Payload()

	job := dto.BillingEmailMessage{
		PlanName: asString(data["plan_name"]),
	}

	switch eventType {
	case "TRIAL_STARTED":
		job.Kind = "trial_started"
		job.ExpiresAt = asString(data["expires_at"])
	case "ORDER_COMPLETED":
		job.Kind = "order_completed"
		job.Amount = fmt.Sprintf("%v", data["final_price"])
	case "ORDER_REJECTED":
		job.Kind = "order_rejected"
		job.Reason = asString(data["status"])
	case "PLAN_REQUEST_DECIDED":
		job.Kind = "request_decided"
		job.Decision = asString(data["decision"])
	default:
		return nil
	}

	email, err := s.ownerEmail(ctx, asString(data["company_id"]))
	if err != nil {
		s.logger.Warn("NotificationService", "Could not resolve owner email", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
		return nil
	}
	if email == "" {
		return nil
	}
	job.To = email

	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	msg := message.NewMessage(uuid.New().String(), payload)
	if err := s.publisher.Publish(s.emailTopic, msg); err != nil {
		return fmt.Errorf("enqueue email job: %w", err)
	}
	return nil
}

// ownerEmail resolves the email of the company owner for a company id
// carried in an event payload.
func (s *NotificationService) ownerEmail(ctx context.Context, companyIdRaw string) (string, error) {
	if companyIdRaw == "" {
		return "", nil
	}
	companyId, err := uuid.Parse(companyIdRaw)
	if err != nil {
		return "", err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: companyId})
	if err != nil {
		return "", err
	}
	if company == nil {
		return "", fmt.Errorf("company %s not found", companyId)
	}

	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: company.OwnerUserId})
	if err != nil {
		return "", err
	}
	if owner == nil || owner.Status == entity.UserStatusBlocked {
		return "", nil
	}
	return owner.Email, nil
}

func asString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC1123)
	case uuid.UUID:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}
