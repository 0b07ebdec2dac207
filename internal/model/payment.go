package model

import "time"

// Payment request lifecycle: created PENDING, moved once to APPROVED or
// REJECTED by an admin, terminal thereafter.
const (
	PaymentPending  = "PENDING"
	PaymentApproved = "APPROVED"
	PaymentRejected = "REJECTED"
)

// Payment is a manually reviewed GCash payment request.
type Payment struct {
	ID            int64      `db:"payment_id" json:"payment_id"`
	FullName      string     `db:"full_name" json:"full_name"`
	Email         string     `db:"email" json:"email"`
	GCashRef      string     `db:"gcash_ref" json:"gcash_ref,omitempty"`
	PlanRequested string     `db:"plan_requested" json:"plan_requested"`
	ReceiptKey    string     `db:"receipt_storage_key" json:"receipt_storage_key,omitempty"`
	Status        string     `db:"status" json:"status"`
	AdminNotes    string     `db:"admin_notes" json:"admin_notes,omitempty"`
	ApprovedBy    string     `db:"approved_by" json:"approved_by,omitempty"`
	SubmittedAt   time.Time  `db:"submitted_at" json:"submitted_at"`
	ApprovedAt    *time.Time `db:"approved_at" json:"approved_at,omitempty"`
}

// PaymentSummary aggregates a user's payment history for display.
type PaymentSummary struct {
	TotalPayments int       `json:"total_payments"`
	PendingCount  int       `json:"pending_count"`
	ApprovedCount int       `json:"approved_count"`
	RejectedCount int       `json:"rejected_count"`
	HasPending    bool      `json:"has_pending"`
	LatestPending *Payment  `json:"latest_pending,omitempty"`
	Payments      []Payment `json:"payments"`
}
