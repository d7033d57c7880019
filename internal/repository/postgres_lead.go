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

type leadPostgres struct {
	db *sqlx.DB
}

func (r *leadPostgres) Create(ctx context.Context, lead *models.PipelineLead) error {
	now := time.Now()
	lead.ID = uuid.New()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	query := `
		INSERT INTO pipeline_leads (id, name, email, phone, insurance_type, annual_premium, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.InsuranceType,
		lead.AnnualPremium, lead.Status, lead.Notes, lead.CreatedAt, lead.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create pipeline lead: %w", err)
	}
	return nil
}

func (r *leadPostgres) GetByID(ctx context.Context, id uuid.UUID) (*models.PipelineLead, error) {
	var lead models.PipelineLead
	query := `
		SELECT id, name, email, phone, insurance_type, annual_premium, status, notes, created_at, updated_at
		FROM pipeline_leads
		WHERE id = $1
	`
	err := r.db.GetContext(ctx, &lead, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pipeline lead by id: %w", err)
	}
	return &lead, nil
}

func (r *leadPostgres) GetAll(ctx context.Context) ([]models.PipelineLead, error) {
	leads := []models.PipelineLead{}
	query := `
		SELECT id, name, email, phone, insurance_type, annual_premium, status, notes, created_at, updated_at
		FROM pipeline_leads
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &leads, query); err != nil {
		return nil, fmt.Errorf("failed to get pipeline leads: %w", err)
	}
	return leads, nil
}

func (r *leadPostgres) Update(ctx context.Context, id uuid.UUID, upd models.UpdateLeadRequest) (*models.PipelineLead, error) {
	sets := []string{}
	args := []interface{}{}
	argCount := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argCount))
		args = append(args, value)
		argCount++
	}

	if upd.Name != nil {
		addSet("name", *upd.Name)
	}
	if upd.Email != nil {
		addSet("email", *upd.Email)
	}
	if upd.Phone != nil {
		addSet("phone", *upd.Phone)
	}
	if upd.InsuranceType != nil {
		addSet("insurance_type", *upd.InsuranceType)
	}
	if upd.AnnualPremium != nil {
		addSet("annual_premium", *upd.AnnualPremium)
	}
	if upd.Status != nil {
		addSet("status", *upd.Status)
	}
	if upd.Notes != nil {
		addSet("notes", *upd.Notes)
	}

	// updated_at always advances, even for an empty partial update.
	addSet("updated_at", time.Now())

	query := fmt.Sprintf(`
		UPDATE pipeline_leads SET %s
		WHERE id = $%d
		RETURNING id, name, email, phone, insurance_type, annual_premium, status, notes, created_at, updated_at
	`, strings.Join(sets, ", "), argCount)
	args = append(args, id)

	var lead models.PipelineLead
	err := r.db.GetContext(ctx, &lead, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update pipeline lead: %w", err)
	}
	return &lead, nil
}

func (r *leadPostgres) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pipeline_leads WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete pipeline lead: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return rows > 0, nil
}
