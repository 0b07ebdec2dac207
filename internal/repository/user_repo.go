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

const userColumns = `email, ip_address, plan_status, questions_used_total, questions_remaining,
	premium_expiry, is_blocked, created_at, updated_at`

// UserRepository defines user-account DB operations.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, email, ipAddress, plan string, questionsRemaining int) (*model.User, error)
	UpdateIP(ctx context.Context, email, ipAddress string) error
	// UpdatePlan sets the plan, quota, and premium expiry in one statement.
	UpdatePlan(ctx context.Context, email, plan string, questionsRemaining int, premiumExpiry *time.Time) error
	// DecrementQuestions atomically spends count questions. Returns false
	// when the user lacks the remaining balance; no row is modified then.
	DecrementQuestions(ctx context.Context, email string, count int) (bool, error)
	AdjustQuota(ctx context.Context, email string, newQuota int) error
	SetBlocked(ctx context.Context, email string, blocked bool) error
	// ListAll returns the latest row per email, newest accounts first.
	ListAll(ctx context.Context, limit int) ([]model.User, error)
	// CountByPlan returns user counts keyed by plan_status.
	CountByPlan(ctx context.Context) (map[string]int, error)
	// Delete removes the user and every dependent row in one transaction.
	Delete(ctx context.Context, email string) error
}

type userRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) UserRepository {
	return &userRepo{pool: pool}
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	var u model.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.Email, &u.IPAddress, &u.PlanType, &u.QuestionsUsedTotal, &u.QuestionsRemaining,
		&u.PremiumExpiry, &u.IsBlocked, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user %s: %w", email, err)
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, email, ipAddress, plan string, questionsRemaining int) (*model.User, error) {
	query := `INSERT INTO users (email, ip_address, plan_status, questions_remaining)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns
	var u model.User
	err := r.pool.QueryRow(ctx, query, email, ipAddress, plan, questionsRemaining).Scan(
		&u.Email, &u.IPAddress, &u.PlanType, &u.QuestionsUsedTotal, &u.QuestionsRemaining,
		&u.PremiumExpiry, &u.IsBlocked, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", email, err)
	}
	return &u, nil
}

func (r *userRepo) UpdateIP(ctx context.Context, email, ipAddress string) error {
	query := `UPDATE users SET ip_address = $1, updated_at = now() WHERE email = $2`
	if _, err := r.pool.Exec(ctx, query, ipAddress, email); err != nil {
		return fmt.Errorf("failed to update ip for %s: %w", email, err)
	}
	return nil
}

func (r *userRepo) UpdatePlan(ctx context.Context, email, plan string, questionsRemaining int, premiumExpiry *time.Time) error {
	query := `UPDATE users
		SET plan_status = $1, questions_remaining = $2, premium_expiry = $3, updated_at = now()
		WHERE email = $4`
	if _, err := r.pool.Exec(ctx, query, plan, questionsRemaining, premiumExpiry, email); err != nil {
		return fmt.Errorf("failed to update plan for %s: %w", email, err)
	}
	return nil
}

func (r *userRepo) DecrementQuestions(ctx context.Context, email string, count int) (bool, error) {
	query := `UPDATE users
		SET questions_remaining = questions_remaining - $1,
		    questions_used_total = questions_used_total + $1,
		    updated_at = now()
		WHERE email = $2 AND questions_remaining >= $1`
	tag, err := r.pool.Exec(ctx, query, count, email)
	if err != nil {
		return false, fmt.Errorf("failed to decrement questions for %s: %w", email, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *userRepo) AdjustQuota(ctx context.Context, email string, newQuota int) error {
	query := `UPDATE users SET questions_remaining = $1, updated_at = now() WHERE email = $2`
	if _, err := r.pool.Exec(ctx, query, newQuota, email); err != nil {
		return fmt.Errorf("failed to adjust quota for %s: %w", email, err)
	}
	return nil
}

func (r *userRepo) SetBlocked(ctx context.Context, email string, blocked bool) error {
	query := `UPDATE users SET is_blocked = $1, updated_at = now() WHERE email = $2`
	if _, err := r.pool.Exec(ctx, query, blocked, email); err != nil {
		return fmt.Errorf("failed to set blocked=%t for %s: %w", blocked, email, err)
	}
	return nil
}

func (r *userRepo) ListAll(ctx context.Context, limit int) ([]model.User, error) {
	// Deduplicate by email, keeping the most recently updated row.
	query := `SELECT ` + userColumns + ` FROM (
			SELECT ` + userColumns + `,
				ROW_NUMBER() OVER (PARTITION BY email ORDER BY updated_at DESC) AS rn
			FROM users
		) ranked
		WHERE rn = 1
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.Email, &u.IPAddress, &u.PlanType, &u.QuestionsUsedTotal, &u.QuestionsRemaining,
			&u.PremiumExpiry, &u.IsBlocked, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return users, nil
}

func (r *userRepo) CountByPlan(ctx context.Context) (map[string]int, error) {
	query := `SELECT plan_status, COUNT(DISTINCT email) FROM users GROUP BY plan_status`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count users by plan: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var plan string
		var n int
		if err := rows.Scan(&plan, &n); err != nil {
			return nil, fmt.Errorf("failed to scan plan count: %w", err)
		}
		counts[plan] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return counts, nil
}

func (r *userRepo) Delete(ctx context.Context, email string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	cascade := []string{
		`DELETE FROM user_ip_history WHERE email = $1`,
		`DELETE FROM usage_logs WHERE email = $1`,
		`DELETE FROM user_documents WHERE email = $1`,
		`DELETE FROM payments WHERE email = $1`,
		`DELETE FROM users WHERE email = $1`,
	}
	for _, query := range cascade {
		if _, err := tx.Exec(ctx, query, email); err != nil {
			return fmt.Errorf("failed to delete user %s: %w", email, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit user deletion: %w", err)
	}
	return nil
}
