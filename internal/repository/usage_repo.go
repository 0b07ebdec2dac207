package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lept-reviewer/backend/internal/model"
)

// UsageRepository records generation events, per-IP counters, and the admin
// audit log.
type UsageRepository interface {
	LogUsage(ctx context.Context, log *model.UsageLog) error
	ListUserLogs(ctx context.Context, email string, limit int) ([]model.UsageLog, error)
	ListAllLogs(ctx context.Context, limit int) ([]model.UsageLog, error)

	// TouchIPHistory upserts the (email, ip) pair's last-seen timestamp.
	TouchIPHistory(ctx context.Context, email, ipAddress string) error
	// TouchIPUsage upserts the per-IP row's last-seen timestamp.
	TouchIPUsage(ctx context.Context, ipAddress string) error
	IncrementIPUsage(ctx context.Context, ipAddress string, count int) error
	IsIPBlocked(ctx context.Context, ipAddress string) (bool, error)
	SetIPBlocked(ctx context.Context, ipAddress string, blocked bool) error

	LogAdminAction(ctx context.Context, adminUser, actionType, details string) error
	ListAdminActions(ctx context.Context, limit int) ([]model.AdminAction, error)
}

type usageRepo struct {
	pool *pgxpool.Pool
}

func NewUsageRepo(pool *pgxpool.Pool) UsageRepository {
	return &usageRepo{pool: pool}
}

func (r *usageRepo) LogUsage(ctx context.Context, log *model.UsageLog) error {
	query := `INSERT INTO usage_logs (email, ip_address, questions_generated, source_type, category, difficulty, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING event_id, event_time`
	err := r.pool.QueryRow(ctx, query,
		log.Email, log.IPAddress, log.QuestionsGenerated, log.SourceType, log.Category, log.Difficulty, log.Notes,
	).Scan(&log.EventID, &log.EventTime)
	if err != nil {
		return fmt.Errorf("failed to log usage for %s: %w", log.Email, err)
	}
	return nil
}

const usageLogColumns = `event_id, email, ip_address, event_time, questions_generated, source_type, category, difficulty, notes`

func (r *usageRepo) ListUserLogs(ctx context.Context, email string, limit int) ([]model.UsageLog, error) {
	query := `SELECT ` + usageLogColumns + ` FROM usage_logs
		WHERE email = $1
		ORDER BY event_time DESC
		LIMIT $2`
	return r.listLogs(ctx, query, email, limit)
}

func (r *usageRepo) ListAllLogs(ctx context.Context, limit int) ([]model.UsageLog, error) {
	query := `SELECT ` + usageLogColumns + ` FROM usage_logs
		ORDER BY event_time DESC
		LIMIT $1`
	return r.listLogs(ctx, query, limit)
}

func (r *usageRepo) listLogs(ctx context.Context, query string, args ...any) ([]model.UsageLog, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage logs: %w", err)
	}
	defer rows.Close()

	logs := []model.UsageLog{}
	for rows.Next() {
		var l model.UsageLog
		if err := rows.Scan(&l.EventID, &l.Email, &l.IPAddress, &l.EventTime,
			&l.QuestionsGenerated, &l.SourceType, &l.Category, &l.Difficulty, &l.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan usage log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return logs, nil
}

func (r *usageRepo) TouchIPHistory(ctx context.Context, email, ipAddress string) error {
	query := `INSERT INTO user_ip_history (email, ip_address)
		VALUES ($1, $2)
		ON CONFLICT (email, ip_address) DO UPDATE SET last_seen = now()`
	if _, err := r.pool.Exec(ctx, query, email, ipAddress); err != nil {
		return fmt.Errorf("failed to record ip history for %s: %w", email, err)
	}
	return nil
}

func (r *usageRepo) TouchIPUsage(ctx context.Context, ipAddress string) error {
	query := `INSERT INTO ip_usage (ip_address)
		VALUES ($1)
		ON CONFLICT (ip_address) DO UPDATE SET last_seen = now()`
	if _, err := r.pool.Exec(ctx, query, ipAddress); err != nil {
		return fmt.Errorf("failed to record ip usage for %s: %w", ipAddress, err)
	}
	return nil
}

func (r *usageRepo) IncrementIPUsage(ctx context.Context, ipAddress string, count int) error {
	query := `INSERT INTO ip_usage (ip_address, questions_used_total)
		VALUES ($1, $2)
		ON CONFLICT (ip_address) DO UPDATE
		SET questions_used_total = ip_usage.questions_used_total + $2, last_seen = now()`
	if _, err := r.pool.Exec(ctx, query, ipAddress, count); err != nil {
		return fmt.Errorf("failed to increment ip usage for %s: %w", ipAddress, err)
	}
	return nil
}

func (r *usageRepo) IsIPBlocked(ctx context.Context, ipAddress string) (bool, error) {
	query := `SELECT is_blocked FROM ip_usage WHERE ip_address = $1 LIMIT 1`
	var blocked bool
	err := r.pool.QueryRow(ctx, query, ipAddress).Scan(&blocked)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check ip block for %s: %w", ipAddress, err)
	}
	return blocked, nil
}

func (r *usageRepo) SetIPBlocked(ctx context.Context, ipAddress string, blocked bool) error {
	query := `INSERT INTO ip_usage (ip_address, is_blocked)
		VALUES ($1, $2)
		ON CONFLICT (ip_address) DO UPDATE SET is_blocked = $2, last_seen = now()`
	if _, err := r.pool.Exec(ctx, query, ipAddress, blocked); err != nil {
		return fmt.Errorf("failed to set ip block for %s: %w", ipAddress, err)
	}
	return nil
}

func (r *usageRepo) LogAdminAction(ctx context.Context, adminUser, actionType, details string) error {
	query := `INSERT INTO admin_actions (admin_user, action_type, details) VALUES ($1, $2, $3)`
	if _, err := r.pool.Exec(ctx, query, adminUser, actionType, details); err != nil {
		return fmt.Errorf("failed to log admin action %s: %w", actionType, err)
	}
	return nil
}

func (r *usageRepo) ListAdminActions(ctx context.Context, limit int) ([]model.AdminAction, error) {
	query := `SELECT action_id, admin_user, action_time, action_type, details
		FROM admin_actions
		ORDER BY action_time DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query admin actions: %w", err)
	}
	defer rows.Close()

	actions := []model.AdminAction{}
	for rows.Next() {
		var a model.AdminAction
		if err := rows.Scan(&a.ID, &a.AdminUser, &a.ActionTime, &a.ActionType, &a.Details); err != nil {
			return nil, fmt.Errorf("failed to scan admin action: %w", err)
		}
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return actions, nil
}
