package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lept-reviewer/backend/internal/exam"
	"github.com/lept-reviewer/backend/internal/model"
)

func newTestUserService(t *testing.T) (UserService, *fakeUserRepo, *fakeUsageRepo) {
	t.Helper()
	users := newFakeUserRepo()
	usage := newFakeUsageRepo()
	svc := NewUserService(users, usage, newTestCache(t), &fakeSecrets{adminPassword: "hunter2"}, testLogger())
	return svc, users, usage
}

func TestLoginCreatesFreeAccount(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	user, err := svc.LoginOrRegister(context.Background(), "New.Student@Example.COM", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "new.student@example.com", user.Email)
	assert.Equal(t, model.PlanFree, user.PlanType)
	assert.Equal(t, exam.FreeQuestionLimit, user.QuestionsRemaining)
}

func TestLoginReturnsExistingAccount(t *testing.T) {
	svc, users, _ := newTestUserService(t)
	ctx := context.Background()

	first, err := svc.LoginOrRegister(ctx, "a@b.com", "10.0.0.1")
	require.NoError(t, err)

	_, err = users.DecrementQuestions(ctx, first.Email, 5)
	require.NoError(t, err)

	again, err := svc.LoginOrRegister(ctx, "a@b.com", "10.0.0.2")
	require.NoError(t, err)
	assert.Equal(t, exam.FreeQuestionLimit-5, again.QuestionsRemaining)
	assert.Equal(t, "10.0.0.2", again.IPAddress)
}

func TestLoginRefusesBlockedUser(t *testing.T) {
	svc, users, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.LoginOrRegister(ctx, "a@b.com", "10.0.0.1")
	require.NoError(t, err)
	require.NoError(t, users.SetBlocked(ctx, "a@b.com", true))

	_, err = svc.LoginOrRegister(ctx, "a@b.com", "10.0.0.1")
	assert.ErrorIs(t, err, ErrUserBlocked)
}

func TestLoginRefusesBlockedIP(t *testing.T) {
	svc, _, usage := newTestUserService(t)
	ctx := context.Background()

	require.NoError(t, usage.SetIPBlocked(ctx, "10.0.0.66", true))

	_, err := svc.LoginOrRegister(ctx, "a@b.com", "10.0.0.66")
	assert.ErrorIs(t, err, ErrIPBlocked)
}

func TestLoginDowngradesExpiredPremium(t *testing.T) {
	svc, users, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.LoginOrRegister(ctx, "a@b.com", "10.0.0.1")
	require.NoError(t, err)

	expired := time.Now().Add(-24 * time.Hour)
	require.NoError(t, users.UpdatePlan(ctx, "a@b.com", model.PlanPremium, exam.PremiumQuotaSentinel, &expired))

	user, err := svc.LoginOrRegister(ctx, "a@b.com", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, model.PlanFree, user.PlanType)
	assert.Zero(t, user.QuestionsRemaining)
	assert.Nil(t, user.PremiumExpiry)
}

func TestStatusPremium(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	expiry := time.Now().Add(10*24*time.Hour + time.Hour)
	status := svc.Status(&model.User{
		PlanType:      model.PlanPremium,
		PremiumExpiry: &expiry,
	})

	assert.Equal(t, "Unlimited", status.QuestionsDisplay)
	assert.Equal(t, "10 days left", status.ExpiryDisplay)
	assert.True(t, status.CanUseAdminDocs)
}

func TestStatusFree(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	status := svc.Status(&model.User{PlanType: model.PlanFree, QuestionsRemaining: 7})
	assert.Equal(t, "7 remaining", status.QuestionsDisplay)
	assert.False(t, status.CanUseAdminDocs)
}

func TestAdminLogin(t *testing.T) {
	svc, _, usage := newTestUserService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.AdminLogin(ctx, "wrong"), ErrInvalidCredentials)

	require.NoError(t, svc.AdminLogin(ctx, "hunter2"))
	require.Len(t, usage.actions, 1)
	assert.Equal(t, model.ActionLogin, usage.actions[0].ActionType)
}

func TestChangePlanDefaultsPerTier(t *testing.T) {
	svc, users, usage := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.LoginOrRegister(ctx, "a@b.com", "10.0.0.1")
	require.NoError(t, err)

	require.NoError(t, svc.ChangePlan(ctx, "admin", "a@b.com", model.PlanPremium))
	user, err := users.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, model.PlanPremium, user.PlanType)
	assert.Equal(t, exam.PremiumQuotaSentinel, user.QuestionsRemaining)
	require.NotNil(t, user.PremiumExpiry)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, exam.PremiumDurationDays), *user.PremiumExpiry, time.Minute)

	require.NoError(t, svc.ChangePlan(ctx, "admin", "a@b.com", model.PlanFree))
	user, err = users.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, exam.FreeQuestionLimit, user.QuestionsRemaining)

	assert.Error(t, svc.ChangePlan(ctx, "admin", "a@b.com", "GOLD"))
	assert.NotEmpty(t, usage.actions)
}

func TestAdminOpsRequireExistingUser(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetUserBlocked(ctx, "admin", "ghost@b.com", true), ErrUserNotFound)
	assert.ErrorIs(t, svc.AdjustQuota(ctx, "admin", "ghost@b.com", 10), ErrUserNotFound)
	assert.ErrorIs(t, svc.DeleteUser(ctx, "admin", "ghost@b.com"), ErrUserNotFound)
}

func TestDeleteUserAudited(t *testing.T) {
	svc, users, usage := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.LoginOrRegister(ctx, "a@b.com", "10.0.0.1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, "admin", "a@b.com"))
	user, err := users.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Nil(t, user)

	var found bool
	for _, a := range usage.actions {
		if a.ActionType == model.ActionUserDeleted {
			found = true
		}
	}
	assert.True(t, found)
}

func TestPlanCounts(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	ctx := context.Background()

	for _, email := range []string{"a@b.com", "b@b.com", "c@b.com"} {
		_, err := svc.LoginOrRegister(ctx, email, "10.0.0.1")
		require.NoError(t, err)
	}
	require.NoError(t, svc.ChangePlan(ctx, "admin", "b@b.com", model.PlanPro))
	require.NoError(t, svc.ChangePlan(ctx, "admin", "c@b.com", model.PlanPremium))

	counts, err := svc.PlanCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[model.PlanFree])
	assert.Equal(t, 1, counts[model.PlanPro])
	assert.Equal(t, 1, counts[model.PlanPremium])
}
