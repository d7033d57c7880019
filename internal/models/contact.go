package models

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	FirstName   string      `json:"firstName" db:"first_name"`
	LastName    string      `json:"lastName" db:"last_name"`
	Email       string      `json:"email" db:"email"`
	Phone       string      `json:"phone" db:"phone"`
	Type        ContactType `json:"type" db:"type"`
	Address     *string     `json:"address,omitempty" db:"address"`
	LastContact *time.Time  `json:"lastContact,omitempty" db:"last_contact"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}

type CreateContactRequest struct {
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Type        ContactType `json:"type"`
	Address     *string     `json:"address"`
	LastContact *time.Time  `json:"lastContact"`
}

// UpdateContactRequest carries partial updates. A nil field means
// "leave unchanged"; there is no way to clear a field through it.
type UpdateContactRequest struct {
	FirstName   *string      `json:"firstName"`
	LastName    *string      `json:"lastName"`
	Email       *string      `json:"email"`
	Phone       *string      `json:"phone"`
	Type        *ContactType `json:"type"`
	Address     *string      `json:"address"`
	LastContact *time.Time   `json:"lastContact"`
}
