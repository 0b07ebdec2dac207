package model

import "time"

// Plan tiers. FREE and PRO consume a question counter, PREMIUM is
// time-limited and exempt from the counter while unexpired.
const (
	PlanFree    = "FREE"
	PlanPro     = "PRO"
	PlanPremium = "PREMIUM"
)

// User represents a registered reviewer account, identified by email.
type User struct {
	Email              string     `db:"email" json:"email"`
	IPAddress          string     `db:"ip_address" json:"ip_address"`
	PlanType           string     `db:"plan_status" json:"plan_type"`
	QuestionsUsedTotal int        `db:"questions_used_total" json:"questions_used_total"`
	QuestionsRemaining int        `db:"questions_remaining" json:"questions_remaining"`
	PremiumExpiry      *time.Time `db:"premium_expiry" json:"premium_expiry,omitempty"`
	IsBlocked          bool       `db:"is_blocked" json:"is_blocked"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

// PremiumActive reports whether the user holds an unexpired PREMIUM plan.
func (u *User) PremiumActive(now time.Time) bool {
	return u.PlanType == PlanPremium && u.PremiumExpiry != nil && u.PremiumExpiry.After(now)
}

// UserStatus is a display snapshot derived from a User row.
type UserStatus struct {
	Plan             string `json:"plan"`
	QuestionsDisplay string `json:"questions_display"`
	QuestionsUsed    int    `json:"questions_used"`
	ExpiryDisplay    string `json:"expiry_display,omitempty"`
	CanUseAdminDocs  bool   `json:"can_use_admin_docs"`
}
