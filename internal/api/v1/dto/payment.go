package dto

import (
	"time"

	"github.com/lept-reviewer/backend/internal/model"
)

// PaymentDTO is one payment request.
type PaymentDTO struct {
	PaymentID     int64      `json:"payment_id"`
	FullName      string     `json:"full_name"`
	Email         string     `json:"email"`
	GCashRef      string     `json:"gcash_ref,omitempty"`
	PlanRequested string     `json:"plan_requested"`
	Status        string     `json:"status"`
	AdminNotes    string     `json:"admin_notes,omitempty"`
	ApprovedBy    string     `json:"approved_by,omitempty"`
	SubmittedAt   time.Time  `json:"submitted_at"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
}

func NewPaymentDTO(p *model.Payment) PaymentDTO {
	return PaymentDTO{
		PaymentID:     p.ID,
		FullName:      p.FullName,
		Email:         p.Email,
		GCashRef:      p.GCashRef,
		PlanRequested: p.PlanRequested,
		Status:        p.Status,
		AdminNotes:    p.AdminNotes,
		ApprovedBy:    p.ApprovedBy,
		SubmittedAt:   p.SubmittedAt,
		ApprovedAt:    p.ApprovedAt,
	}
}

func NewPaymentDTOs(payments []model.Payment) []PaymentDTO {
	dtos := make([]PaymentDTO, 0, len(payments))
	for i := range payments {
		dtos = append(dtos, NewPaymentDTO(&payments[i]))
	}
	return dtos
}

// PaymentSummaryDTO aggregates a user's payment history.
type PaymentSummaryDTO struct {
	TotalPayments int          `json:"total_payments"`
	PendingCount  int          `json:"pending_count"`
	ApprovedCount int          `json:"approved_count"`
	RejectedCount int          `json:"rejected_count"`
	HasPending    bool         `json:"has_pending"`
	LatestPending *PaymentDTO  `json:"latest_pending,omitempty"`
	Payments      []PaymentDTO `json:"payments"`
}

func NewPaymentSummaryDTO(s *model.PaymentSummary) PaymentSummaryDTO {
	summary := PaymentSummaryDTO{
		TotalPayments: s.TotalPayments,
		PendingCount:  s.PendingCount,
		ApprovedCount: s.ApprovedCount,
		RejectedCount: s.RejectedCount,
		HasPending:    s.HasPending,
		Payments:      NewPaymentDTOs(s.Payments),
	}
	if s.LatestPending != nil {
		latest := NewPaymentDTO(s.LatestPending)
		summary.LatestPending = &latest
	}
	return summary
}

// PaymentDecisionDTO carries the admin's approve/reject notes.
type PaymentDecisionDTO struct {
	Notes string `json:"notes" validate:"max=500"`
}

// PaymentInstructionsDTO is the GCash payment information shown on the
// upgrade page.
type PaymentInstructionsDTO struct {
	GCashNumber      string `json:"gcash_number"`
	GCashAccountName string `json:"gcash_account_name"`
	ProPrice         int    `json:"pro_price"`
	PremiumPrice     int    `json:"premium_price"`
}

// ReceiptURLDTO carries a short-lived receipt download link.
type ReceiptURLDTO struct {
	URL string `json:"url"`
}
