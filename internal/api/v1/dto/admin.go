package dto

import (
	"time"

	"github.com/lept-reviewer/backend/internal/model"
)

// SetBlockedDTO blocks or unblocks a user account.
type SetBlockedDTO struct {
	Blocked bool `json:"blocked"`
}

// AdjustQuotaDTO overwrites a user's remaining question counter.
type AdjustQuotaDTO struct {
	Quota int `json:"quota" validate:"gte=0"`
}

// ChangePlanDTO moves a user to another plan tier.
type ChangePlanDTO struct {
	Plan string `json:"plan" validate:"required,oneof=FREE PRO PREMIUM"`
}

// AdminStatsDTO is the admin dashboard summary.
type AdminStatsDTO struct {
	TotalUsers      int `json:"total_users"`
	FreeUsers       int `json:"free_users"`
	ProUsers        int `json:"pro_users"`
	PremiumUsers    int `json:"premium_users"`
	PendingPayments int `json:"pending_payments"`
}

// AdminActionDTO is one audit log entry.
type AdminActionDTO struct {
	ActionID   int64     `json:"action_id"`
	AdminUser  string    `json:"admin_user"`
	ActionTime time.Time `json:"action_time"`
	ActionType string    `json:"action_type"`
	Details    string    `json:"details,omitempty"`
}

func NewAdminActionDTOs(actions []model.AdminAction) []AdminActionDTO {
	dtos := make([]AdminActionDTO, 0, len(actions))
	for _, a := range actions {
		dtos = append(dtos, AdminActionDTO{
			ActionID:   a.ID,
			AdminUser:  a.AdminUser,
			ActionTime: a.ActionTime,
			ActionType: a.ActionType,
			Details:    a.Details,
		})
	}
	return dtos
}
