package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/valvesss/weseg-replit/internal/models"
)

type contactPostgres struct {
	db *sqlx.DB
}

func (r *contactPostgres) Create(ctx context.Context, contact *models.Contact) error {
	contact.ID = uuid.New()
	contact.CreatedAt = time.Now()

	query := `
		INSERT INTO contacts (id, first_name, last_name, email, phone, type, address, last_contact, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		contact.ID, contact.FirstName, contact.LastName, contact.Email,
		contact.Phone, contact.Type, contact.Address, contact.LastContact, contact.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

func (r *contactPostgres) GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	query := `
		SELECT id, first_name, last_name, email, phone, type, address, last_contact, created_at
		FROM contacts
		WHERE id = $1
	`
	err := r.db.GetContext(ctx, &contact, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact by id: %w", err)
	}
	return &contact, nil
}

func (r *contactPostgres) GetAll(ctx context.Context) ([]models.Contact, error) {
	contacts := []models.Contact{}
	query := `
		SELECT id, first_name, last_name, email, phone, type, address, last_contact, created_at
		FROM contacts
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &contacts, query); err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}
	return contacts, nil
}

func (r *contactPostgres) Update(ctx context.Context, id uuid.UUID, upd models.UpdateContactRequest) (*models.Contact, error) {
	sets := []string{}
	args := []interface{}{}
	argCount := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argCount))
		args = append(args, value)
		argCount++
	}

	if upd.FirstName != nil {
		addSet("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		addSet("last_name", *upd.LastName)
	}
	if upd.Email != nil {
		addSet("email", *upd.Email)
	}
	if upd.Phone != nil {
		addSet("phone", *upd.Phone)
	}
	if upd.Type != nil {
		addSet("type", *upd.Type)
	}
	if upd.Address != nil {
		addSet("address", *upd.Address)
	}
	if upd.LastContact != nil {
		addSet("last_contact", *upd.LastContact)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`
		UPDATE contacts SET %s
		WHERE id = $%d
		RETURNING id, first_name, last_name, email, phone, type, address, last_contact, created_at
	`, strings.Join(sets, ", "), argCount)
	args = append(args, id)

	var contact models.Contact
	err := r.db.GetContext(ctx, &contact, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return &contact, nil
}

func (r *contactPostgres) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete contact: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return rows > 0, nil
}
