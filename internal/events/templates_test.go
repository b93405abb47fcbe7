package events

import (
	"testing"
	"time"

	"stayhub-notifications/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestRequestRespondedMessage_StatusTable(t *testing.T) {
	respondedAt := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		status entity.RequestStatus
		want   string
	}{
		{entity.StatusApproved, `Good news! Host Marko Markovic has approved your reservation request for accommodation "Sea View" on 2024-06-10.`},
		{entity.StatusRejected, `Unfortunately, host Marko Markovic has rejected your reservation request for accommodation "Sea View" on 2024-06-10.`},
		{entity.StatusCancelled, `Your reservation request for accommodation "Sea View" was cancelled by host Marko Markovic on 2024-06-10.`},
		{entity.StatusPending, `Your reservation request for accommodation "Sea View" is still pending host review.`},
		{entity.RequestStatus("SOMETHING_NEW"), `Your reservation request for accommodation "Sea View" is still pending host review.`},
	}

	for _, tt := range tests {
		event := &RequestRespondedEvent{
			HostName:     "Marko",
			HostLastName: "Markovic",
			RespondedAt:  respondedAt,
			Status:       tt.status,
		}
		assert.Equal(t, tt.want, requestRespondedMessage("Sea View", event), "status %s", tt.status)
	}
}

func TestRequestRespondedMessage_AutoApprovedIgnoresStatus(t *testing.T) {
	event := &RequestRespondedEvent{
		HostName:     "",
		HostLastName: " ",
		RespondedAt:  time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC),
		Status:       entity.StatusRejected,
	}

	got := requestRespondedMessage("Sea View", event)
	assert.Equal(t, `Your reservation request for accommodation "Sea View" was automatically approved by the system on 2024-06-10.`, got)
}

func TestReservationMessages(t *testing.T) {
	event := &ReservationEvent{
		GuestName:     "Jane",
		GuestLastName: "Doe",
		GuestEmail:    "jane@example.com",
		StartDate:     "2024-06-01",
		EndDate:       "2024-06-05",
	}

	created := reservationCreatedMessage("Sea View", event)
	assert.Equal(t, `New reservation request for accommodation "Sea View" from 2024-06-01 to 2024-06-05 created by guest Jane Doe (jane@example.com).`, created)

	cancelled := reservationCancelledMessage("Sea View", event)
	assert.Equal(t, `Reservation for accommodation "Sea View" from 2024-06-01 to 2024-06-05 has been cancelled by guest Jane Doe (jane@example.com).`, cancelled)
}
