package model

import "time"

// UsageLog is an append-only record of a question-generation event.
type UsageLog struct {
	EventID            int64     `db:"event_id" json:"event_id"`
	Email              string    `db:"email" json:"email"`
	IPAddress          string    `db:"ip_address" json:"ip_address"`
	EventTime          time.Time `db:"event_time" json:"event_time"`
	QuestionsGenerated int       `db:"questions_generated" json:"questions_generated"`
	SourceType         string    `db:"source_type" json:"source_type,omitempty"`
	Category           string    `db:"category" json:"category,omitempty"`
	Difficulty         string    `db:"difficulty" json:"difficulty,omitempty"`
	Notes              string    `db:"notes" json:"notes,omitempty"`
}

// Admin action types recorded in the audit log.
const (
	ActionLogin            = "LOGIN"
	ActionPaymentApproved  = "APPROVE_PAYMENT"
	ActionPaymentRejected  = "REJECT_PAYMENT"
	ActionUserBlocked      = "BLOCK_USER"
	ActionUserUnblocked    = "UNBLOCK_USER"
	ActionQuotaAdjusted    = "ADJUST_QUOTA"
	ActionPlanChanged      = "CHANGE_PLAN"
	ActionUserDeleted      = "DELETE_USER"
	ActionUploadAdminDoc   = "UPLOAD_ADMIN_DOC"
	ActionToggleAdminDoc   = "TOGGLE_ADMIN_DOC"
	ActionDeleteAdminDoc   = "DELETE_ADMIN_DOC"
)

// AdminAction is an append-only audit record of an administrative operation.
type AdminAction struct {
	ID         int64     `db:"action_id" json:"action_id"`
	AdminUser  string    `db:"admin_user" json:"admin_user"`
	ActionTime time.Time `db:"action_time" json:"action_time"`
	ActionType string    `db:"action_type" json:"action_type"`
	Details    string    `db:"details" json:"details,omitempty"`
}

// IPUsage holds per-IP aggregate counters used for coarse abuse signaling.
type IPUsage struct {
	IPAddress          string    `db:"ip_address" json:"ip_address"`
	QuestionsUsedTotal int       `db:"questions_used_total" json:"questions_used_total"`
	IsBlocked          bool      `db:"is_blocked" json:"is_blocked"`
	FirstSeen          time.Time `db:"first_seen" json:"first_seen"`
	LastSeen           time.Time `db:"last_seen" json:"last_seen"`
}
