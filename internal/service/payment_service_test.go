package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lept-reviewer/backend/internal/exam"
	"github.com/lept-reviewer/backend/internal/model"
)

type paymentFixture struct {
	svc      PaymentService
	users    *fakeUserRepo
	payments *fakePaymentRepo
	usage    *fakeUsageRepo
	storage  *fakeStorage
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	users := newFakeUserRepo()
	payments := newFakePaymentRepo(users)
	usage := newFakeUsageRepo()
	storage := newFakeStorage()
	svc := NewPaymentService(payments, users, usage, storage, newTestCache(t), 200, testLogger())
	return &paymentFixture{svc: svc, users: users, payments: payments, usage: usage, storage: storage}
}

func validSubmission() PaymentSubmission {
	return PaymentSubmission{
		FullName:      "Juan Dela Cruz",
		Email:         "juan@example.com",
		GCashRef:      "REF-12345",
		PlanRequested: model.PlanPro,
		ReceiptName:   "receipt.jpg",
		ReceiptData:   []byte("jpeg-bytes"),
		ContentType:   "image/jpeg",
	}
}

func TestSubmitStoresReceiptAndCreatesPending(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPending, payment.Status)
	assert.Equal(t, "juan@example.com", payment.Email)
	assert.True(t, strings.HasPrefix(payment.ReceiptKey, "receipts/juan@example.com/"))
	assert.Contains(t, f.storage.objects, payment.ReceiptKey)
}

func TestSubmitValidation(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	bad := validSubmission()
	bad.Email = "juan@example.con"
	_, err := f.svc.Submit(ctx, bad)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Did you mean .com?", vErr.Message)

	bad = validSubmission()
	bad.FullName = "J"
	_, err = f.svc.Submit(ctx, bad)
	require.ErrorAs(t, err, &vErr)

	bad = validSubmission()
	bad.PlanRequested = model.PlanFree
	_, err = f.svc.Submit(ctx, bad)
	require.ErrorAs(t, err, &vErr)

	bad = validSubmission()
	bad.ReceiptName = "receipt.exe"
	_, err = f.svc.Submit(ctx, bad)
	require.ErrorAs(t, err, &vErr)
}

func TestSubmitRejectsSecondPending(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, validSubmission())
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, validSubmission())
	assert.ErrorIs(t, err, ErrDuplicatePending)
}

func TestApproveProStacksOnCurrentBalance(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, "juan@example.com", "10.0.0.1", model.PlanFree, 7)
	require.NoError(t, err)

	payment, err := f.svc.Submit(ctx, validSubmission())
	require.NoError(t, err)

	approved, err := f.svc.Approve(ctx, "admin", payment.ID, "verified ref")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentApproved, approved.Status)
	assert.Equal(t, "admin", approved.ApprovedBy)

	user, err := f.users.GetByEmail(ctx, "juan@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.PlanPro, user.PlanType)
	assert.Equal(t, 7+exam.ProQuestionBonus, user.QuestionsRemaining)
}

func TestApprovePremiumSetsExpiry(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, "juan@example.com", "10.0.0.1", model.PlanFree, 0)
	require.NoError(t, err)

	sub := validSubmission()
	sub.PlanRequested = model.PlanPremium
	payment, err := f.svc.Submit(ctx, sub)
	require.NoError(t, err)

	_, err = f.svc.Approve(ctx, "admin", payment.ID, "")
	require.NoError(t, err)

	user, err := f.users.GetByEmail(ctx, "juan@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.PlanPremium, user.PlanType)
	assert.Equal(t, exam.PremiumQuotaSentinel, user.QuestionsRemaining)
	require.NotNil(t, user.PremiumExpiry)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, exam.PremiumDurationDays), *user.PremiumExpiry, time.Minute)
}

func TestApproveIsAudited(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := f.svc.Submit(ctx, validSubmission())
	require.NoError(t, err)

	_, err = f.svc.Approve(ctx, "admin", payment.ID, "")
	require.NoError(t, err)

	require.Len(t, f.usage.actions, 1)
	assert.Equal(t, model.ActionPaymentApproved, f.usage.actions[0].ActionType)
	assert.Contains(t, f.usage.actions[0].Details, "juan@example.com")
}

func TestApproveMissingPayment(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.Approve(context.Background(), "admin", 404, "")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestRejectLeavesPlanUnchanged(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, "juan@example.com", "10.0.0.1", model.PlanFree, 7)
	require.NoError(t, err)

	payment, err := f.svc.Submit(ctx, validSubmission())
	require.NoError(t, err)

	rejected, err := f.svc.Reject(ctx, "admin", payment.ID, "no matching transfer")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentRejected, rejected.Status)
	assert.Equal(t, "no matching transfer", rejected.AdminNotes)

	user, err := f.users.GetByEmail(ctx, "juan@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.PlanFree, user.PlanType)
	assert.Equal(t, 7, user.QuestionsRemaining)
}

func TestUserSummaryCounts(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := f.svc.Submit(ctx, validSubmission())
	require.NoError(t, err)
	_, err = f.svc.Reject(ctx, "admin", payment.ID, "")
	require.NoError(t, err)

	payment, err = f.svc.Submit(ctx, validSubmission())
	require.NoError(t, err)

	summary, err := f.svc.UserSummary(ctx, "juan@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalPayments)
	assert.Equal(t, 1, summary.PendingCount)
	assert.Equal(t, 1, summary.RejectedCount)
	assert.True(t, summary.HasPending)
	require.NotNil(t, summary.LatestPending)
	assert.Equal(t, payment.ID, summary.LatestPending.ID)
}

func TestReceiptURL(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := f.svc.Submit(ctx, validSubmission())
	require.NoError(t, err)

	url, err := f.svc.ReceiptURL(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://storage.test/"+payment.ReceiptKey, url)
}
