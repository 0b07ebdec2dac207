package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lept-reviewer/backend/internal/model"
)

// ErrPaymentNotPending is returned when approving or rejecting a payment
// that is not in the PENDING state. Payment decisions are terminal.
var ErrPaymentNotPending = errors.New("payment is not pending")

const paymentColumns = `payment_id, full_name, email, gcash_ref, plan_requested,
	receipt_storage_key, status, admin_notes, approved_by, submitted_at, approved_at`

// PaymentRepository defines payment-request DB operations.
type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) error
	GetByID(ctx context.Context, id int64) (*model.Payment, error)
	// ListPending returns pending requests oldest first, capped at 50.
	ListPending(ctx context.Context) ([]model.Payment, error)
	ListAll(ctx context.Context, limit int) ([]model.Payment, error)
	ListByUser(ctx context.Context, email string, limit int) ([]model.Payment, error)
	// ApproveAndUpgrade marks the payment approved and applies the plan
	// change to the user row in a single transaction, so a crash between
	// the two writes cannot leave an approved payment without an upgrade.
	ApproveAndUpgrade(ctx context.Context, id int64, adminNotes, approvedBy, plan string, questionsRemaining int, premiumExpiry *time.Time) (*model.Payment, error)
	Reject(ctx context.Context, id int64, adminNotes, rejectedBy string) (*model.Payment, error)
}

type paymentRepo struct {
	pool *pgxpool.Pool
}

func NewPaymentRepo(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepo{pool: pool}
}

func (r *paymentRepo) Create(ctx context.Context, p *model.Payment) error {
	query := `INSERT INTO payments (full_name, email, gcash_ref, plan_requested, receipt_storage_key, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING payment_id, submitted_at`
	err := r.pool.QueryRow(ctx, query,
		p.FullName, p.Email, p.GCashRef, p.PlanRequested, p.ReceiptKey, model.PaymentPending,
	).Scan(&p.ID, &p.SubmittedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment for %s: %w", p.Email, err)
	}
	p.Status = model.PaymentPending
	return nil
}

func (r *paymentRepo) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1 LIMIT 1`
	var p model.Payment
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.FullName, &p.Email, &p.GCashRef, &p.PlanRequested,
		&p.ReceiptKey, &p.Status, &p.AdminNotes, &p.ApprovedBy, &p.SubmittedAt, &p.ApprovedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query payment %d: %w", id, err)
	}
	return &p, nil
}

func (r *paymentRepo) ListPending(ctx context.Context) ([]model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE status = $1
		ORDER BY submitted_at ASC
		LIMIT 50`
	return r.list(ctx, query, model.PaymentPending)
}

func (r *paymentRepo) ListAll(ctx context.Context, limit int) ([]model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		ORDER BY submitted_at DESC
		LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *paymentRepo) ListByUser(ctx context.Context, email string, limit int) ([]model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE email = $1
		ORDER BY submitted_at DESC
		LIMIT $2`
	return r.list(ctx, query, email, limit)
}

func (r *paymentRepo) list(ctx context.Context, query string, args ...any) ([]model.Payment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []model.Payment{}
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(
			&p.ID, &p.FullName, &p.Email, &p.GCashRef, &p.PlanRequested,
			&p.ReceiptKey, &p.Status, &p.AdminNotes, &p.ApprovedBy, &p.SubmittedAt, &p.ApprovedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return payments, nil
}

func (r *paymentRepo) ApproveAndUpgrade(ctx context.Context, id int64, adminNotes, approvedBy, plan string, questionsRemaining int, premiumExpiry *time.Time) (*model.Payment, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin approval transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Locking the row keeps two admins from deciding the same request.
	var p model.Payment
	selectQ := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1 FOR UPDATE`
	err = tx.QueryRow(ctx, selectQ, id).Scan(
		&p.ID, &p.FullName, &p.Email, &p.GCashRef, &p.PlanRequested,
		&p.ReceiptKey, &p.Status, &p.AdminNotes, &p.ApprovedBy, &p.SubmittedAt, &p.ApprovedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock payment %d: %w", id, err)
	}
	if p.Status != model.PaymentPending {
		return nil, ErrPaymentNotPending
	}

	approveQ := `UPDATE payments
		SET status = $1, admin_notes = $2, approved_at = now(), approved_by = $3
		WHERE payment_id = $4
		RETURNING status, admin_notes, approved_by, approved_at`
	err = tx.QueryRow(ctx, approveQ, model.PaymentApproved, adminNotes, approvedBy, id).
		Scan(&p.Status, &p.AdminNotes, &p.ApprovedBy, &p.ApprovedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to approve payment %d: %w", id, err)
	}

	upgradeQ := `UPDATE users
		SET plan_status = $1, questions_remaining = $2, premium_expiry = $3, updated_at = now()
		WHERE email = $4`
	if _, err := tx.Exec(ctx, upgradeQ, plan, questionsRemaining, premiumExpiry, p.Email); err != nil {
		return nil, fmt.Errorf("failed to upgrade user %s: %w", p.Email, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit payment approval: %w", err)
	}
	return &p, nil
}

func (r *paymentRepo) Reject(ctx context.Context, id int64, adminNotes, rejectedBy string) (*model.Payment, error) {
	query := `UPDATE payments
		SET status = $1, admin_notes = $2, approved_at = now(), approved_by = $3
		WHERE payment_id = $4 AND status = $5
		RETURNING ` + paymentColumns
	var p model.Payment
	err := r.pool.QueryRow(ctx, query, model.PaymentRejected, adminNotes, rejectedBy, id, model.PaymentPending).Scan(
		&p.ID, &p.FullName, &p.Email, &p.GCashRef, &p.PlanRequested,
		&p.ReceiptKey, &p.Status, &p.AdminNotes, &p.ApprovedBy, &p.SubmittedAt, &p.ApprovedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		// Either the payment does not exist or it was already decided.
		existing, getErr := r.GetByID(ctx, id)
		if getErr != nil {
			return nil, getErr
		}
		if existing == nil {
			return nil, nil
		}
		return nil, ErrPaymentNotPending
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reject payment %d: %w", id, err)
	}
	return &p, nil
}
