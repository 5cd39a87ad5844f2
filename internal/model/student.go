package model

import (
	"strings"

	"github.com/google/uuid"
)

// Student is a contact record. Lessons reference students by ID where known
// and always carry a denormalized name copy for display.
type Student struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ParentFirstName string    `json:"parent_first_name,omitempty"`
	ParentLastName  string    `json:"parent_last_name,omitempty"`
	Mobile          string    `json:"mobile,omitempty"`
	Email           string    `json:"email,omitempty"`
}

// FullName joins first and last name, tolerating an empty last name.
func (s Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
