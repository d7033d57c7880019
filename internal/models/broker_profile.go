package models

import (
	"time"

	"github.com/lib/pq"
)

// BrokerProfile is a singleton record: created on the first PUT, updated
// in place afterwards. No id travels over the API.
type BrokerProfile struct {
	FirstName       string         `json:"firstName" db:"first_name"`
	LastName        string         `json:"lastName" db:"last_name"`
	Email           string         `json:"email" db:"email"`
	Phone           string         `json:"phone" db:"phone"`
	Address         *string        `json:"address,omitempty" db:"address"`
	LicenseNumber   string         `json:"licenseNumber" db:"license_number"`
	LicenseExpiry   time.Time      `json:"licenseExpiry" db:"license_expiry"`
	Specializations pq.StringArray `json:"specializations" db:"specializations"`
	Experience      string         `json:"experience" db:"experience"`
	ProfilePicture  *string        `json:"profilePicture,omitempty" db:"profile_picture"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time      `json:"updatedAt" db:"updated_at"`
}

// UpsertBrokerProfileRequest carries the full profile; the PUT endpoint
// replaces every editable field rather than merging.
type UpsertBrokerProfileRequest struct {
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Address         *string    `json:"address"`
	LicenseNumber   string     `json:"licenseNumber"`
	LicenseExpiry   *time.Time `json:"licenseExpiry"`
	Specializations []string   `json:"specializations"`
	Experience      string     `json:"experience"`
	ProfilePicture  *string    `json:"profilePicture"`
}
