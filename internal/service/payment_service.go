package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lept-reviewer/backend/internal/cache"
	"github.com/lept-reviewer/backend/internal/exam"
	"github.com/lept-reviewer/backend/internal/model"
	"github.com/lept-reviewer/backend/internal/repository"
	"github.com/lept-reviewer/backend/internal/util"
)

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrDuplicatePending = errors.New("a pending payment request already exists")
)

// ValidationError carries a user-facing message for a rejected submission.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// receiptURLTTL is how long admin-facing receipt links stay valid.
const receiptURLTTL = 15 * time.Minute

// PaymentSubmission is a user's GCash payment claim with its receipt image.
type PaymentSubmission struct {
	FullName      string
	Email         string
	GCashRef      string
	PlanRequested string
	ReceiptName   string
	ReceiptData   []byte
	ContentType   string
}

// PaymentService handles the manual GCash payment flow: users submit a
// claim with a receipt, admins approve or reject it.
type PaymentService interface {
	Submit(ctx context.Context, sub PaymentSubmission) (*model.Payment, error)
	ListPending(ctx context.Context) ([]model.Payment, error)
	ListAll(ctx context.Context, limit int) ([]model.Payment, error)
	// UserSummary aggregates a user's payment history.
	UserSummary(ctx context.Context, email string) (*model.PaymentSummary, error)
	// ReceiptURL returns a short-lived presigned link to a receipt image.
	ReceiptURL(ctx context.Context, paymentID int64) (string, error)
	// Approve marks the payment approved and upgrades the user's plan.
	Approve(ctx context.Context, adminUser string, paymentID int64, notes string) (*model.Payment, error)
	Reject(ctx context.Context, adminUser string, paymentID int64, notes string) (*model.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
	usageRepo   repository.UsageRepository
	storage     StorageService
	cache       *cache.Cache
	maxSizeMB   int
	payLogger   zerolog.Logger
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	usageRepo repository.UsageRepository,
	storage StorageService,
	c *cache.Cache,
	maxSizeMB int,
	logger zerolog.Logger,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		usageRepo:   usageRepo,
		storage:     storage,
		cache:       c,
		maxSizeMB:   maxSizeMB,
		payLogger:   logger.With().Str("service", "PaymentService").Logger(),
	}
}

func (s *paymentService) Submit(ctx context.Context, sub PaymentSubmission) (*model.Payment, error) {
	if ok, msg := util.ValidateFullName(sub.FullName); !ok {
		return nil, &ValidationError{Message: msg}
	}
	if ok, msg := util.ValidateEmail(sub.Email); !ok {
		return nil, &ValidationError{Message: msg}
	}
	if ok, msg := util.ValidateGCashReference(sub.GCashRef); !ok {
		return nil, &ValidationError{Message: msg}
	}
	if sub.PlanRequested != model.PlanPro && sub.PlanRequested != model.PlanPremium {
		return nil, &ValidationError{Message: "Plan must be PRO or PREMIUM"}
	}
	if ok, msg := util.ValidateFile(sub.ReceiptName, int64(len(sub.ReceiptData)), util.ReceiptExtensions, s.maxSizeMB); !ok {
		return nil, &ValidationError{Message: msg}
	}

	email := util.NormalizeEmail(sub.Email)

	// One open request at a time per user.
	summary, err := s.UserSummary(ctx, email)
	if err != nil {
		return nil, err
	}
	if summary.HasPending {
		return nil, ErrDuplicatePending
	}

	receiptKey := fmt.Sprintf("receipts/%s/%s%s", email, uuid.NewString(), util.FileExtension(sub.ReceiptName))
	if err := s.storage.Upload(ctx, receiptKey, sub.ReceiptData, sub.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store receipt: %w", err)
	}

	payment := &model.Payment{
		FullName:      sub.FullName,
		Email:         email,
		GCashRef:      sub.GCashRef,
		PlanRequested: sub.PlanRequested,
		ReceiptKey:    receiptKey,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.cache.InvalidatePayments(ctx); err != nil {
		s.payLogger.Warn().Err(err).Msg("Failed to invalidate payments cache")
	}
	s.payLogger.Info().
		Str("email", email).
		Str("plan", sub.PlanRequested).
		Int64("payment_id", payment.ID).
		Msg("Payment request submitted")
	return payment, nil
}

func (s *paymentService) ListPending(ctx context.Context) ([]model.Payment, error) {
	var cached []model.Payment
	found, err := s.cache.Get(ctx, cache.PendingPaymentsKey(), &cached)
	if err == nil && found {
		return cached, nil
	}

	pending, err := s.paymentRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	if cacheErr := s.cache.Set(ctx, cache.PendingPaymentsKey(), pending, cache.PendingPaymentsTTL); cacheErr != nil {
		s.payLogger.Warn().Err(cacheErr).Msg("Failed to cache pending payments")
	}
	return pending, nil
}

func (s *paymentService) ListAll(ctx context.Context, limit int) ([]model.Payment, error) {
	return s.paymentRepo.ListAll(ctx, limit)
}

func (s *paymentService) UserSummary(ctx context.Context, email string) (*model.PaymentSummary, error) {
	payments, err := s.paymentRepo.ListByUser(ctx, util.NormalizeEmail(email), 50)
	if err != nil {
		return nil, err
	}

	summary := &model.PaymentSummary{
		TotalPayments: len(payments),
		Payments:      payments,
	}
	for i := range payments {
		switch payments[i].Status {
		case model.PaymentPending:
			summary.PendingCount++
			if summary.LatestPending == nil {
				summary.LatestPending = &payments[i]
			}
		case model.PaymentApproved:
			summary.ApprovedCount++
		case model.PaymentRejected:
			summary.RejectedCount++
		}
	}
	summary.HasPending = summary.PendingCount > 0
	return summary, nil
}

func (s *paymentService) ReceiptURL(ctx context.Context, paymentID int64) (string, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return "", err
	}
	if payment == nil {
		return "", ErrPaymentNotFound
	}
	if payment.ReceiptKey == "" {
		return "", fmt.Errorf("payment %d has no receipt", paymentID)
	}
	return s.storage.PresignedGetURL(ctx, payment.ReceiptKey, receiptURLTTL)
}

func (s *paymentService) Approve(ctx context.Context, adminUser string, paymentID int64, notes string) (*model.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	var (
		remaining int
		expiry    *time.Time
	)
	switch payment.PlanRequested {
	case model.PlanPro:
		// PRO stacks on the user's current balance.
		user, err := s.userRepo.GetByEmail(ctx, payment.Email)
		if err != nil {
			return nil, err
		}
		remaining = exam.ProQuestionBonus
		if user != nil {
			remaining = user.QuestionsRemaining + exam.ProQuestionBonus
		}
	case model.PlanPremium:
		remaining = exam.PremiumQuotaSentinel
		t := time.Now().AddDate(0, 0, exam.PremiumDurationDays)
		expiry = &t
	default:
		return nil, fmt.Errorf("payment %d requests unknown plan %q", paymentID, payment.PlanRequested)
	}

	approved, err := s.paymentRepo.ApproveAndUpgrade(ctx, paymentID, notes, adminUser, payment.PlanRequested, remaining, expiry)
	if err != nil {
		return nil, err
	}
	if approved == nil {
		return nil, ErrPaymentNotFound
	}

	s.invalidateAfterDecision(ctx, payment.Email)
	s.audit(ctx, adminUser, model.ActionPaymentApproved,
		fmt.Sprintf("payment=%d email=%s plan=%s", paymentID, payment.Email, payment.PlanRequested))
	s.payLogger.Info().
		Int64("payment_id", paymentID).
		Str("email", payment.Email).
		Str("plan", payment.PlanRequested).
		Msg("Payment approved")
	return approved, nil
}

func (s *paymentService) Reject(ctx context.Context, adminUser string, paymentID int64, notes string) (*model.Payment, error) {
	rejected, err := s.paymentRepo.Reject(ctx, paymentID, notes, adminUser)
	if err != nil {
		return nil, err
	}
	if rejected == nil {
		return nil, ErrPaymentNotFound
	}

	s.invalidateAfterDecision(ctx, rejected.Email)
	s.audit(ctx, adminUser, model.ActionPaymentRejected,
		fmt.Sprintf("payment=%d email=%s", paymentID, rejected.Email))
	s.payLogger.Info().
		Int64("payment_id", paymentID).
		Str("email", rejected.Email).
		Msg("Payment rejected")
	return rejected, nil
}

func (s *paymentService) invalidateAfterDecision(ctx context.Context, email string) {
	if err := s.cache.InvalidatePayments(ctx); err != nil {
		s.payLogger.Warn().Err(err).Msg("Failed to invalidate payments cache")
	}
	if err := s.cache.InvalidateUser(ctx, email); err != nil {
		s.payLogger.Warn().Err(err).Str("email", email).Msg("Failed to invalidate user cache")
	}
}

func (s *paymentService) audit(ctx context.Context, adminUser, actionType, details string) {
	if err := s.usageRepo.LogAdminAction(ctx, adminUser, actionType, details); err != nil {
		s.payLogger.Warn().Err(err).Str("action", actionType).Msg("Failed to log admin action")
	}
}
