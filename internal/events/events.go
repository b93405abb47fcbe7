package events

import (
	"time"

	"stayhub-notifications/internal/entity"
)

// Topics this service consumes from the booking-events exchange.
const (
	TopicReservationCreated    = "reservation-created"
	TopicReservationCancelled  = "reservation-cancelled"
	TopicRequestResponded      = "request-responded"
	TopicAccommodationReviewed = "accommodation-reviewed"
	TopicHostReviewed          = "host-reviewed"
)

// ReservationEvent is published for both reservation-created and
// reservation-cancelled. Dates are plain yyyy-mm-dd strings.
type ReservationEvent struct {
	ReservationID   string    `json:"reservationId"`
	AccommodationID string    `json:"accommodationId"`
	GuestID         string    `json:"guestId"`
	GuestName       string    `json:"guestName"`
	GuestLastName   string    `json:"guestLastName"`
	GuestEmail      string    `json:"guestEmail"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	CreatedAt       time.Time `json:"createdAt"`
}

// RequestRespondedEvent carries a host's decision on a reservation request.
// Blank host name fields mean the system decided automatically.
type RequestRespondedEvent struct {
	ReservationRequestID string               `json:"reservationRequestId"`
	AccommodationID      string               `json:"accommodationId"`
	GuestID              string               `json:"guestId"`
	HostName             string               `json:"hostName"`
	HostLastName         string               `json:"hostLastName"`
	RespondedAt          time.Time            `json:"respondedAt"`
	Status               entity.RequestStatus `json:"status"`
}

type AccommodationReviewedEvent struct {
	ReviewID        string    `json:"reviewId"`
	AccommodationID string    `json:"accommodationId"`
	GuestID         string    `json:"guestId"`
	GuestFirstName  string    `json:"guestFirstName"`
	GuestLastName   string    `json:"guestLastName"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment"`
	CreatedAt       time.Time `json:"createdAt"`
}

type HostReviewedEvent struct {
	ReviewID       string    `json:"reviewId"`
	HostID         string    `json:"hostId"`
	GuestID        string    `json:"guestId"`
	GuestFirstName string    `json:"guestFirstName"`
	GuestLastName  string    `json:"guestLastName"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"createdAt"`
}
