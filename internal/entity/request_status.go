package entity

// RequestStatus is the decision a host gives to a reservation request.
type RequestStatus string

const (
	StatusApproved  RequestStatus = "APPROVED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusCancelled RequestStatus = "CANCELLED"
	StatusPending   RequestStatus = "PENDING"
)
