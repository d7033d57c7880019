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

type policyPostgres struct {
	db *sqlx.DB
}

func (r *policyPostgres) Create(ctx context.Context, policy *models.Policy) error {
	policy.ID = uuid.New()
	policy.CreatedAt = time.Now()

	query := `
		INSERT INTO policies (id, policy_number, contact_id, type, premium, status, renewal_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		policy.ID, policy.PolicyNumber, policy.ContactID, policy.Type,
		policy.Premium, policy.Status, policy.RenewalDate, policy.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create policy: %w", err)
	}
	return nil
}

func (r *policyPostgres) GetByID(ctx context.Context, id uuid.UUID) (*models.Policy, error) {
	var policy models.Policy
	query := `
		SELECT id, policy_number, contact_id, type, premium, status, renewal_date, created_at
		FROM policies
		WHERE id = $1
	`
	err := r.db.GetContext(ctx, &policy, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get policy by id: %w", err)
	}
	return &policy, nil
}

func (r *policyPostgres) GetAll(ctx context.Context) ([]models.Policy, error) {
	policies := []models.Policy{}
	query := `
		SELECT id, policy_number, contact_id, type, premium, status, renewal_date, created_at
		FROM policies
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &policies, query); err != nil {
		return nil, fmt.Errorf("failed to get policies: %w", err)
	}
	return policies, nil
}

func (r *policyPostgres) Update(ctx context.Context, id uuid.UUID, upd models.UpdatePolicyRequest) (*models.Policy, error) {
	sets := []string{}
	args := []interface{}{}
	argCount := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argCount))
		args = append(args, value)
		argCount++
	}

	if upd.PolicyNumber != nil {
		addSet("policy_number", *upd.PolicyNumber)
	}
	if upd.ContactID != nil {
		addSet("contact_id", *upd.ContactID)
	}
	if upd.Type != nil {
		addSet("type", *upd.Type)
	}
	if upd.Premium != nil {
		addSet("premium", *upd.Premium)
	}
	if upd.Status != nil {
		addSet("status", *upd.Status)
	}
	if upd.RenewalDate != nil {
		addSet("renewal_date", *upd.RenewalDate)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`
		UPDATE policies SET %s
		WHERE id = $%d
		RETURNING id, policy_number, contact_id, type, premium, status, renewal_date, created_at
	`, strings.Join(sets, ", "), argCount)
	args = append(args, id)

	var policy models.Policy
	err := r.db.GetContext(ctx, &policy, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update policy: %w", err)
	}
	return &policy, nil
}

func (r *policyPostgres) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM policies WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete policy: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return rows > 0, nil
}
