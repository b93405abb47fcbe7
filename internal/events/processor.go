package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"stayhub-notifications/internal/accommodation"
	"stayhub-notifications/internal/entity"
	"stayhub-notifications/pkg/logger"
	"stayhub-notifications/pkg/queue"
)

// NotificationStore appends generated notifications.
type NotificationStore interface {
	Create(notification *entity.Notification) error
}

// SettingsGate answers whether a user is subscribed to a notification type.
type SettingsGate interface {
	IsEnabled(userID string, notifType entity.NotificationType) (bool, error)
}

// HostResolver resolves the owning host of an accommodation.
type HostResolver interface {
	Resolve(ctx context.Context, accommodationID string) (*accommodation.Info, error)
}

// Deliverer pushes a stored notification to the recipient's live connections.
// Fire and forget: it must not block on slow clients.
type Deliverer interface {
	Deliver(userID string, notification *entity.Notification)
}

// Processor turns inbound domain events into stored and pushed notifications.
// Every handler contains its own failures: a bad event is logged and dropped,
// never retried from here.
type Processor struct {
	store    NotificationStore
	settings SettingsGate
	resolver HostResolver
	hub      Deliverer
	dedup    Deduper
	logger   *logger.Logger
}

func NewProcessor(
	store NotificationStore,
	settings SettingsGate,
	resolver HostResolver,
	hub Deliverer,
	dedup Deduper,
	log *logger.Logger,
) *Processor {
	if dedup == nil {
		dedup = NoopDeduper{}
	}
	return &Processor{
		store:    store,
		settings: settings,
		resolver: resolver,
		hub:      hub,
		dedup:    dedup,
		logger:   log,
	}
}

// Register binds every topic handler to the queue client. Each topic gets its
// own consumer goroutine, so a slow enrichment call on one topic never stalls
// the others.
func (p *Processor) Register(q *queue.Client) error {
	handlers := map[string]func(context.Context, []byte) error{
		TopicReservationCreated:    p.HandleReservationCreated,
		TopicReservationCancelled:  p.HandleReservationCancelled,
		TopicRequestResponded:      p.HandleRequestResponded,
		TopicAccommodationReviewed: p.HandleAccommodationReviewed,
		TopicHostReviewed:          p.HandleHostReviewed,
	}

	for topic, handler := range handlers {
		if err := q.Consume(topic, p.guard(topic, handler)); err != nil {
			return fmt.Errorf("failed to register consumer for %s: %w", topic, err)
		}
	}
	return nil
}

// guard keeps a panicking or failing handler from taking down the consumer
// loop: whatever happens, the outcome is a logged error and a dropped message.
func (p *Processor) guard(topic string, handler func(context.Context, []byte) error) func([]byte) error {
	return func(body []byte) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic while processing %s: %v", topic, r)
			}
		}()
		return handler(context.Background(), body)
	}
}

func (p *Processor) HandleReservationCreated(ctx context.Context, body []byte) error {
	var event ReservationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		p.logger.Error("Failed to decode ReservationEvent: %v", err)
		return fmt.Errorf("decode reservation-created: %w", err)
	}

	if p.dedup.Seen(ctx, TopicReservationCreated+":"+event.ReservationID) {
		p.logger.Info("Skipping duplicate reservation-created event %s", event.ReservationID)
		return nil
	}

	info, err := p.resolver.Resolve(ctx, event.AccommodationID)
	if err != nil {
		p.logger.Error("Failed to resolve host for accommodation %s: %v", event.AccommodationID, err)
		return fmt.Errorf("enrich reservation-created: %w", err)
	}

	return p.notify(info.HostID, entity.ReservationCreated, reservationCreatedMessage(info.AccommodationName, &event), event.CreatedAt)
}

func (p *Processor) HandleReservationCancelled(ctx context.Context, body []byte) error {
	var event ReservationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		p.logger.Error("Failed to decode ReservationEvent: %v", err)
		return fmt.Errorf("decode reservation-cancelled: %w", err)
	}

	if p.dedup.Seen(ctx, TopicReservationCancelled+":"+event.ReservationID) {
		p.logger.Info("Skipping duplicate reservation-cancelled event %s", event.ReservationID)
		return nil
	}

	info, err := p.resolver.Resolve(ctx, event.AccommodationID)
	if err != nil {
		p.logger.Error("Failed to resolve host for accommodation %s: %v", event.AccommodationID, err)
		return fmt.Errorf("enrich reservation-cancelled: %w", err)
	}

	return p.notify(info.HostID, entity.ReservationCanceled, reservationCancelledMessage(info.AccommodationName, &event), event.CreatedAt)
}

func (p *Processor) HandleRequestResponded(ctx context.Context, body []byte) error {
	var event RequestRespondedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		p.logger.Error("Failed to decode RequestRespondedEvent: %v", err)
		return fmt.Errorf("decode request-responded: %w", err)
	}

	if p.dedup.Seen(ctx, TopicRequestResponded+":"+event.ReservationRequestID) {
		p.logger.Info("Skipping duplicate request-responded event %s", event.ReservationRequestID)
		return nil
	}

	// The gate is checked on the guest before the enrichment round-trip, so
	// opted-out guests cost nothing.
	enabled, err := p.settings.IsEnabled(event.GuestID, entity.ReservationResponded)
	if err != nil {
		p.logger.Error("Failed to check settings for guest %s: %v", event.GuestID, err)
		return fmt.Errorf("settings check request-responded: %w", err)
	}
	if !enabled {
		p.logger.Info("Guest %s not subscribed to %s, skipping", event.GuestID, entity.ReservationResponded)
		return nil
	}

	info, err := p.resolver.Resolve(ctx, event.AccommodationID)
	if err != nil {
		p.logger.Error("Failed to resolve host for accommodation %s: %v", event.AccommodationID, err)
		return fmt.Errorf("enrich request-responded: %w", err)
	}

	return p.persistAndPush(&entity.Notification{
		UserID:    event.GuestID,
		NotifType: entity.ReservationResponded,
		Message:   requestRespondedMessage(info.AccommodationName, &event),
		CreatedAt: event.RespondedAt,
	})
}

func (p *Processor) HandleAccommodationReviewed(ctx context.Context, body []byte) error {
	var event AccommodationReviewedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		p.logger.Error("Failed to decode AccommodationReviewedEvent: %v", err)
		return fmt.Errorf("decode accommodation-reviewed: %w", err)
	}

	if p.dedup.Seen(ctx, TopicAccommodationReviewed+":"+event.ReviewID) {
		p.logger.Info("Skipping duplicate accommodation-reviewed event %s", event.ReviewID)
		return nil
	}

	info, err := p.resolver.Resolve(ctx, event.AccommodationID)
	if err != nil {
		p.logger.Error("Failed to resolve host for accommodation %s: %v", event.AccommodationID, err)
		return fmt.Errorf("enrich accommodation-reviewed: %w", err)
	}

	return p.notify(info.HostID, entity.AccommodationRated, accommodationReviewedMessage(&event), event.CreatedAt)
}

func (p *Processor) HandleHostReviewed(ctx context.Context, body []byte) error {
	var event HostReviewedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		p.logger.Error("Failed to decode HostReviewedEvent: %v", err)
		return fmt.Errorf("decode host-reviewed: %w", err)
	}

	if p.dedup.Seen(ctx, TopicHostReviewed+":"+event.ReviewID) {
		p.logger.Info("Skipping duplicate host-reviewed event %s", event.ReviewID)
		return nil
	}

	// The event carries the host id directly, no enrichment needed.
	return p.notify(event.HostID, entity.HostRated, hostReviewedMessage(&event), event.CreatedAt)
}

// notify runs the common tail of a processor: settings gate, persist, push.
func (p *Processor) notify(userID string, notifType entity.NotificationType, message string, createdAt time.Time) error {
	enabled, err := p.settings.IsEnabled(userID, notifType)
	if err != nil {
		p.logger.Error("Failed to check settings for user %s: %v", userID, err)
		return fmt.Errorf("settings check %s: %w", notifType, err)
	}
	if !enabled {
		p.logger.Info("User %s not subscribed to %s, skipping", userID, notifType)
		return nil
	}

	return p.persistAndPush(&entity.Notification{
		UserID:    userID,
		NotifType: notifType,
		Message:   message,
		CreatedAt: createdAt,
	})
}

// persistAndPush stores the notification first, then delivers it to live
// connections. A crash between the two only costs the live push; history
// still has the row.
func (p *Processor) persistAndPush(notification *entity.Notification) error {
	if err := p.store.Create(notification); err != nil {
		p.logger.Error("Failed to persist %s notification for user %s: %v", notification.NotifType, notification.UserID, err)
		return fmt.Errorf("persist %s: %w", notification.NotifType, err)
	}

	p.hub.Deliver(notification.UserID, notification)

	p.logger.Info("Stored and pushed %s notification %s to user %s", notification.NotifType, notification.ID, notification.UserID)
	return nil
}
