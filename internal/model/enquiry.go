package model

import (
	"time"

	"github.com/google/uuid"
)

// Enquiry is a request for lessons from a prospective student. It is
// consumed on booking (converted into a Student plus a Lesson) or deleted
// outright when declined.
type Enquiry struct {
	ID          uuid.UUID  `json:"id"`
	ParentName  string     `json:"parent_name"`
	StudentName string     `json:"student_name,omitempty"`
	ContactInfo string     `json:"contact_info,omitempty"` // phone number or email
	Instrument  string     `json:"instrument,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Slot        *time.Time `json:"slot,omitempty"` // proposed lesson time, if any
}
