package entity

import (
	"fmt"
	"time"
)

// NotificationType is the closed set of notification kinds this service emits.
type NotificationType string

const (
	ReservationCreated   NotificationType = "RESERVATION_CREATED"
	ReservationCanceled  NotificationType = "RESERVATION_CANCELED"
	ReservationResponded NotificationType = "RESERVATION_RESPONDED"
	AccommodationRated   NotificationType = "ACCOMMODATION_RATED"
	HostRated            NotificationType = "HOST_RATED"
)

// AllNotificationTypes returns every known type, in a stable order.
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		ReservationCreated,
		ReservationCanceled,
		ReservationResponded,
		AccommodationRated,
		HostRated,
	}
}

// ParseNotificationType validates a wire/path value against the closed set.
func ParseNotificationType(s string) (NotificationType, error) {
	for _, t := range AllNotificationTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown notification type %q", s)
}

// Notification is one fact delivered to one user. Only the Read flag is
// mutable after creation, and it only ever goes false -> true.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	NotifType NotificationType `json:"notif_type"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
	Read      bool             `json:"read"`
}

// Setting is one (user, type) subscription flag. At most one row per pair.
type Setting struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	NotifType NotificationType `json:"notif_type"`
	Enabled   bool             `json:"enabled"`
}
