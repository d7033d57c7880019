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

type claimPostgres struct {
	db *sqlx.DB
}

func (r *claimPostgres) Create(ctx context.Context, claim *models.Claim) error {
	now := time.Now()
	claim.ID = uuid.New()
	claim.DateFiled = now
	claim.UpdatedAt = now

	query := `
		INSERT INTO claims (id, claim_id, policy_id, contact_id, type, amount, status, description, date_filed, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		claim.ID, claim.ClaimID, claim.PolicyID, claim.ContactID, claim.Type,
		claim.Amount, claim.Status, claim.Description, claim.DateFiled, claim.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create claim: %w", err)
	}
	return nil
}

func (r *claimPostgres) GetByID(ctx context.Context, id uuid.UUID) (*models.Claim, error) {
	var claim models.Claim
	query := `
		SELECT id, claim_id, policy_id, contact_id, type, amount, status, description, date_filed, updated_at
		FROM claims
		WHERE id = $1
	`
	err := r.db.GetContext(ctx, &claim, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get claim by id: %w", err)
	}
	return &claim, nil
}

func (r *claimPostgres) GetAll(ctx context.Context) ([]models.Claim, error) {
	claims := []models.Claim{}
	query := `
		SELECT id, claim_id, policy_id, contact_id, type, amount, status, description, date_filed, updated_at
		FROM claims
		ORDER BY date_filed DESC
	`
	if err := r.db.SelectContext(ctx, &claims, query); err != nil {
		return nil, fmt.Errorf("failed to get claims: %w", err)
	}
	return claims, nil
}

func (r *claimPostgres) Update(ctx context.Context, id uuid.UUID, upd models.UpdateClaimRequest) (*models.Claim, error) {
	sets := []string{}
	args := []interface{}{}
	argCount := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argCount))
		args = append(args, value)
		argCount++
	}

	if upd.ClaimID != nil {
		addSet("claim_id", *upd.ClaimID)
	}
	if upd.PolicyID != nil {
		addSet("policy_id", *upd.PolicyID)
	}
	if upd.ContactID != nil {
		addSet("contact_id", *upd.ContactID)
	}
	if upd.Type != nil {
		addSet("type", *upd.Type)
	}
	if upd.Amount != nil {
		addSet("amount", *upd.Amount)
	}
	if upd.Status != nil {
		addSet("status", *upd.Status)
	}
	if upd.Description != nil {
		addSet("description", *upd.Description)
	}

	addSet("updated_at", time.Now())

	query := fmt.Sprintf(`
		UPDATE claims SET %s
		WHERE id = $%d
		RETURNING id, claim_id, policy_id, contact_id, type, amount, status, description, date_filed, updated_at
	`, strings.Join(sets, ", "), argCount)
	args = append(args, id)

	var claim models.Claim
	err := r.db.GetContext(ctx, &claim, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update claim: %w", err)
	}
	return &claim, nil
}

func (r *claimPostgres) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM claims WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete claim: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return rows > 0, nil
}
