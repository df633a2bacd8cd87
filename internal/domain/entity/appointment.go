package entity

// AppointmentStatus tracks the scheduling state of a visit.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
)

// Appointment is a scheduled technician visit for a quote request.
type Appointment struct {
	ID             string            `json:"id"`
	QuoteRequestID string            `json:"quoteRequestId"`
	ScheduledDate  string            `json:"scheduledDate"`
	Window         string            `json:"window"`
	Technician     string            `json:"technician"`
	Status         AppointmentStatus `json:"status"`
}
