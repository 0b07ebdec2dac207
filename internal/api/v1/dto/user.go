package dto

import (
	"time"

	"github.com/lept-reviewer/backend/internal/model"
)

// UserDTO is the account representation returned in API responses.
type UserDTO struct {
	Email              string     `json:"email"`
	Plan               string     `json:"plan"`
	QuestionsUsedTotal int        `json:"questions_used_total"`
	QuestionsRemaining int        `json:"questions_remaining"`
	PremiumExpiry      *time.Time `json:"premium_expiry,omitempty"`
	IsBlocked          bool       `json:"is_blocked"`
	CreatedAt          time.Time  `json:"created_at"`
}

func NewUserDTO(u *model.User) UserDTO {
	return UserDTO{
		Email:              u.Email,
		Plan:               u.PlanType,
		QuestionsUsedTotal: u.QuestionsUsedTotal,
		QuestionsRemaining: u.QuestionsRemaining,
		PremiumExpiry:      u.PremiumExpiry,
		IsBlocked:          u.IsBlocked,
		CreatedAt:          u.CreatedAt,
	}
}

// UserStatusDTO is the plan snapshot shown in the sidebar.
type UserStatusDTO struct {
	Plan             string `json:"plan"`
	QuestionsDisplay string `json:"questions_display"`
	QuestionsUsed    int    `json:"questions_used"`
	ExpiryDisplay    string `json:"expiry_display,omitempty"`
	CanUseAdminDocs  bool   `json:"can_use_admin_docs"`
}

func NewUserStatusDTO(s model.UserStatus) UserStatusDTO {
	return UserStatusDTO{
		Plan:             s.Plan,
		QuestionsDisplay: s.QuestionsDisplay,
		QuestionsUsed:    s.QuestionsUsed,
		ExpiryDisplay:    s.ExpiryDisplay,
		CanUseAdminDocs:  s.CanUseAdminDocs,
	}
}

// UsageLogDTO is one generation event.
type UsageLogDTO struct {
	EventID            int64     `json:"event_id"`
	Email              string    `json:"email"`
	EventTime          time.Time `json:"event_time"`
	QuestionsGenerated int       `json:"questions_generated"`
	SourceType         string    `json:"source_type,omitempty"`
	Category           string    `json:"category,omitempty"`
	Difficulty         string    `json:"difficulty,omitempty"`
}

func NewUsageLogDTOs(logs []model.UsageLog) []UsageLogDTO {
	dtos := make([]UsageLogDTO, 0, len(logs))
	for _, l := range logs {
		dtos = append(dtos, UsageLogDTO{
			EventID:            l.EventID,
			Email:              l.Email,
			EventTime:          l.EventTime,
			QuestionsGenerated: l.QuestionsGenerated,
			SourceType:         l.SourceType,
			Category:           l.Category,
			Difficulty:         l.Difficulty,
		})
	}
	return dtos
}
