package events

import (
	"fmt"
	"strings"
	"time"

	"stayhub-notifications/internal/entity"
)

func reservationCreatedMessage(accommodationName string, e *ReservationEvent) string {
	return fmt.Sprintf(
		"New reservation request for accommodation %q from %s to %s created by guest %s %s (%s).",
		accommodationName, e.StartDate, e.EndDate, e.GuestName, e.GuestLastName, e.GuestEmail,
	)
}

func reservationCancelledMessage(accommodationName string, e *ReservationEvent) string {
	return fmt.Sprintf(
		"Reservation for accommodation %q from %s to %s has been cancelled by guest %s %s (%s).",
		accommodationName, e.StartDate, e.EndDate, e.GuestName, e.GuestLastName, e.GuestEmail,
	)
}

func autoApprovedMessage(accommodationName string, respondedAt time.Time) string {
	return fmt.Sprintf(
		"Your reservation request for accommodation %q was automatically approved by the system on %s.",
		accommodationName, respondedAt.Format("2006-01-02"),
	)
}

type respondedTemplate func(hostName, hostLastName, accommodationName string, respondedAt time.Time) string

// respondedTemplates maps each request status to its rendering. Statuses
// outside the table fall through to pendingTemplate.
var respondedTemplates = map[entity.RequestStatus]respondedTemplate{
	entity.StatusApproved: func(hostName, hostLastName, accommodationName string, respondedAt time.Time) string {
		return fmt.Sprintf(
			"Good news! Host %s %s has approved your reservation request for accommodation %q on %s.",
			hostName, hostLastName, accommodationName, respondedAt.Format("2006-01-02"),
		)
	},
	entity.StatusRejected: func(hostName, hostLastName, accommodationName string, respondedAt time.Time) string {
		return fmt.Sprintf(
			"Unfortunately, host %s %s has rejected your reservation request for accommodation %q on %s.",
			hostName, hostLastName, accommodationName, respondedAt.Format("2006-01-02"),
		)
	},
	entity.StatusCancelled: func(hostName, hostLastName, accommodationName string, respondedAt time.Time) string {
		return fmt.Sprintf(
			"Your reservation request for accommodation %q was cancelled by host %s %s on %s.",
			accommodationName, hostName, hostLastName, respondedAt.Format("2006-01-02"),
		)
	},
}

func pendingTemplate(_, _, accommodationName string, _ time.Time) string {
	return fmt.Sprintf(
		"Your reservation request for accommodation %q is still pending host review.",
		accommodationName,
	)
}

func requestRespondedMessage(accommodationName string, e *RequestRespondedEvent) string {
	if strings.TrimSpace(e.HostName) == "" && strings.TrimSpace(e.HostLastName) == "" {
		return autoApprovedMessage(accommodationName, e.RespondedAt)
	}

	tmpl, ok := respondedTemplates[e.Status]
	if !ok {
		tmpl = pendingTemplate
	}
	return tmpl(e.HostName, e.HostLastName, accommodationName, e.RespondedAt)
}

func accommodationReviewedMessage(e *AccommodationReviewedEvent) string {
	return fmt.Sprintf(
		"Your accommodation was reviewed by %s %s with rating %d/5.",
		e.GuestFirstName, e.GuestLastName, e.Rating,
	)
}

func hostReviewedMessage(e *HostReviewedEvent) string {
	return fmt.Sprintf(
		"You were reviewed by %s %s with rating %d/5.",
		e.GuestFirstName, e.GuestLastName, e.Rating,
	)
}
