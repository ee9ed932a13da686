package scheduling

import "fmt"

// RejectError is a business-rule rejection. The message is the user-facing
// reason; the code distinguishes rules for callers that need to.
type RejectError struct {
	Code    string
	Message string
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrPastStart       = &RejectError{Code: "pastStart", Message: "cannot make appointment in the past"}
	ErrStartFormat     = &RejectError{Code: "startFormat", Message: "invalid start time format"}
	ErrEndFormat       = &RejectError{Code: "endFormat", Message: "invalid end time format"}
	ErrOrdering        = &RejectError{Code: "ordering", Message: "end date must be after start date"}
	ErrOperationHours  = &RejectError{Code: "operationHours", Message: "appointment must be within operation hours"}
	ErrMaxDuration     = &RejectError{Code: "maxDuration", Message: "appointment duration too long"}
	ErrBlockedDate     = &RejectError{Code: "blockedDate", Message: "blocked date"}
	ErrBlockedTime     = &RejectError{Code: "blockedTime", Message: "blocked time"}
	ErrClash           = &RejectError{Code: "clash", Message: "clash with existing appointments"}
	ErrNotFound        = &RejectError{Code: "notFound", Message: "appointment not found"}
	ErrPastAppointment = &RejectError{Code: "pastAppointment", Message: "cannot cancel appointment in the past"}
)
