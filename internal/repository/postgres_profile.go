package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/valvesss/weseg-replit/internal/models"
)

// The broker profile lives in a single well-known row. The fixed key
// keeps the upsert honest instead of relying on an implicit serial id.
const brokerProfileKey = 1

type brokerProfilePostgres struct {
	db *sqlx.DB
}

func (r *brokerProfilePostgres) Get(ctx context.Context) (*models.BrokerProfile, error) {
	var profile models.BrokerProfile
	query := `
		SELECT first_name, last_name, email, phone, address, license_number, license_expiry,
		       specializations, experience, profile_picture, created_at, updated_at
		FROM broker_profile
		WHERE profile_key = $1
	`
	err := r.db.GetContext(ctx, &profile, query, brokerProfileKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get broker profile: %w", err)
	}
	return &profile, nil
}

func (r *brokerProfilePostgres) Upsert(ctx context.Context, req models.UpsertBrokerProfileRequest) (*models.BrokerProfile, error) {
	now := time.Now()
	var licenseExpiry time.Time
	if req.LicenseExpiry != nil {
		licenseExpiry = *req.LicenseExpiry
	}

	query := `
		INSERT INTO broker_profile (profile_key, first_name, last_name, email, phone, address,
		                            license_number, license_expiry, specializations, experience,
		                            profile_picture, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		ON CONFLICT (profile_key) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			license_number = EXCLUDED.license_number,
			license_expiry = EXCLUDED.license_expiry,
			specializations = EXCLUDED.specializations,
			experience = EXCLUDED.experience,
			profile_picture = EXCLUDED.profile_picture,
			updated_at = EXCLUDED.updated_at
		RETURNING first_name, last_name, email, phone, address, license_number, license_expiry,
		          specializations, experience, profile_picture, created_at, updated_at
	`

	var profile models.BrokerProfile
	err := r.db.GetContext(ctx, &profile, query,
		brokerProfileKey, req.FirstName, req.LastName, req.Email, req.Phone, req.Address,
		req.LicenseNumber, licenseExpiry, pq.StringArray(req.Specializations), req.Experience,
		req.ProfilePicture, now)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert broker profile: %w", err)
	}
	return &profile, nil
}
