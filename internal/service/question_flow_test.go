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

type questionFixture struct {
	svc    QuestionService
	users  *fakeUserRepo
	usage  *fakeUsageRepo
	openAI *fakeOpenAI
}

func newQuestionFixture(t *testing.T) *questionFixture {
	t.Helper()
	users := newFakeUserRepo()
	usage := newFakeUsageRepo()
	openAI := &fakeOpenAI{response: sampleBatchJSON}
	svc := NewQuestionService(users, usage, newTestCache(t), &fakeSecrets{apiKey: "sk-test"}, openAI, testLogger())
	return &questionFixture{svc: svc, users: users, usage: usage, openAI: openAI}
}

func presetRequest() GenerationRequest {
	return GenerationRequest{
		Email:          "a@b.com",
		IPAddress:      "10.0.0.1",
		Component:      exam.ComponentGeneralEducation,
		Difficulty:     "Easy",
		EducationLevel: exam.LevelSecondary,
		NumQuestions:   exam.QuestionsPerBatch,
	}
}

func TestPresetConsumesQuota(t *testing.T) {
	f := newQuestionFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, "a@b.com", "10.0.0.1", model.PlanFree, exam.FreeQuestionLimit)
	require.NoError(t, err)

	questions, err := f.svc.Preset(ctx, presetRequest())
	require.NoError(t, err)
	assert.Len(t, questions, exam.QuestionsPerBatch)

	user, err := f.users.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, exam.FreeQuestionLimit-exam.QuestionsPerBatch, user.QuestionsRemaining)
	assert.Equal(t, exam.QuestionsPerBatch, user.QuestionsUsedTotal)

	require.Len(t, f.usage.logs, 1)
	assert.Equal(t, SourcePreset, f.usage.logs[0].SourceType)
	assert.Equal(t, exam.ComponentGeneralEducation, f.usage.logs[0].Category)
	assert.Equal(t, exam.QuestionsPerBatch, f.usage.ipCounts["10.0.0.1"])
}

func TestPresetRefusesExhaustedQuota(t *testing.T) {
	f := newQuestionFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, "a@b.com", "10.0.0.1", model.PlanFree, 3)
	require.NoError(t, err)

	_, err = f.svc.Preset(ctx, presetRequest())
	assert.ErrorIs(t, err, ErrQuotaExhausted)
	assert.Empty(t, f.usage.logs)
}

func TestPresetRefusesBlockedUser(t *testing.T) {
	f := newQuestionFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, "a@b.com", "10.0.0.1", model.PlanFree, exam.FreeQuestionLimit)
	require.NoError(t, err)
	require.NoError(t, f.users.SetBlocked(ctx, "a@b.com", true))

	_, err = f.svc.Preset(ctx, presetRequest())
	assert.ErrorIs(t, err, ErrUserBlocked)
}

func TestPresetUnknownUser(t *testing.T) {
	f := newQuestionFixture(t)

	_, err := f.svc.Preset(context.Background(), presetRequest())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPremiumBypassesQuotaCheck(t *testing.T) {
	f := newQuestionFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, "a@b.com", "10.0.0.1", model.PlanPremium, exam.PremiumQuotaSentinel)
	require.NoError(t, err)
	expiry := time.Now().AddDate(0, 0, 10)
	require.NoError(t, f.users.UpdatePlan(ctx, "a@b.com", model.PlanPremium, exam.PremiumQuotaSentinel, &expiry))

	questions, err := f.svc.Preset(ctx, presetRequest())
	require.NoError(t, err)
	assert.Len(t, questions, exam.QuestionsPerBatch)

	// The sentinel counter is never decremented for an active PREMIUM;
	// usage is still logged and counted per IP.
	user, err := f.users.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, exam.PremiumQuotaSentinel, user.QuestionsRemaining)
	require.Len(t, f.usage.logs, 1)
	assert.Equal(t, exam.QuestionsPerBatch, f.usage.ipCounts["10.0.0.1"])
}

func TestPremiumServedWithZeroCounter(t *testing.T) {
	f := newQuestionFixture(t)
	ctx := context.Background()

	// An active PREMIUM is served regardless of what the counter holds.
	_, err := f.users.Create(ctx, "a@b.com", "10.0.0.1", model.PlanPremium, 0)
	require.NoError(t, err)
	expiry := time.Now().AddDate(0, 0, 10)
	require.NoError(t, f.users.UpdatePlan(ctx, "a@b.com", model.PlanPremium, 0, &expiry))

	questions, err := f.svc.Preset(ctx, presetRequest())
	require.NoError(t, err)
	assert.Len(t, questions, exam.QuestionsPerBatch)

	user, err := f.users.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, 0, user.QuestionsRemaining)
}

func TestGenerateParsesAndCharges(t *testing.T) {
	f := newQuestionFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, "a@b.com", "10.0.0.1", model.PlanPro, exam.ProQuestionBonus)
	require.NoError(t, err)

	req := presetRequest()
	req.NumQuestions = 1
	questions, err := f.svc.Generate(ctx, req)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 1, f.openAI.calls)

	user, err := f.users.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	// Only the questions actually produced are charged.
	assert.Equal(t, exam.ProQuestionBonus-1, user.QuestionsRemaining)

	require.Len(t, f.usage.logs, 1)
	assert.Equal(t, SourceAI, f.usage.logs[0].SourceType)
}

func TestGenerateRequiresPaidPlan(t *testing.T) {
	f := newQuestionFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, "a@b.com", "10.0.0.1", model.PlanFree, exam.FreeQuestionLimit)
	require.NoError(t, err)

	_, err = f.svc.Generate(ctx, presetRequest())
	assert.ErrorIs(t, err, ErrPlanRequired)
	assert.Zero(t, f.openAI.calls)
}

func TestGenerateUnparseableResponse(t *testing.T) {
	f := newQuestionFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, "a@b.com", "10.0.0.1", model.PlanPro, exam.ProQuestionBonus)
	require.NoError(t, err)
	f.openAI.response = "Sorry, I cannot help with that."

	_, err = f.svc.Generate(ctx, presetRequest())
	assert.ErrorIs(t, err, ErrGenerationFailed)

	// Failed generations are free.
	user, err := f.users.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, exam.ProQuestionBonus, user.QuestionsRemaining)
	assert.Empty(t, f.usage.logs)
}

func TestGenerateSpecializationCategory(t *testing.T) {
	f := newQuestionFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, "a@b.com", "10.0.0.1", model.PlanPro, exam.ProQuestionBonus)
	require.NoError(t, err)

	req := presetRequest()
	req.Component = exam.ComponentSpecialization
	req.Specialization = "Mathematics"
	req.NumQuestions = 1

	_, err = f.svc.Generate(ctx, req)
	require.NoError(t, err)

	require.Len(t, f.usage.logs, 1)
	assert.Equal(t, "Mathematics", f.usage.logs[0].Category)
}

func TestGateRejectsBadInput(t *testing.T) {
	f := newQuestionFixture(t)
	ctx := context.Background()

	req := presetRequest()
	req.Component = "numerology"
	_, err := f.svc.Preset(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidComponent)

	req = presetRequest()
	req.Difficulty = "Impossible"
	_, err = f.svc.Preset(ctx, req)
	assert.Error(t, err)

	req = presetRequest()
	req.NumQuestions = 0
	_, err = f.svc.Preset(ctx, req)
	assert.Error(t, err)
}
